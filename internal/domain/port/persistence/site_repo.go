package persistence

import (
	"context"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// SiteRepository defines essential methods to interact with planting site data
type SiteRepository interface {
	// Create saves a new planting site
	Create(ctx context.Context, site *entity.PlantingSite) error

	// GetByID retrieves a site by ID
	//
	// Possible errors:
	// - ErrSiteNotFound: If the site doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.PlantingSite, error)

	// Update persists site changes
	Update(ctx context.Context, site *entity.PlantingSite) error

	// List returns all sites ordered by name
	List(ctx context.Context) ([]*entity.PlantingSite, error)

	// ListByStatus returns sites whose status is in the given set, ordered by name
	ListByStatus(ctx context.Context, statuses ...entity.SiteStatus) ([]*entity.PlantingSite, error)

	// IncrementPlantedTrees atomically adds count to a site's planted-tree
	// counter as a single server-side step
	//
	// Possible errors:
	// - ErrSiteNotFound: If the site doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	IncrementPlantedTrees(ctx context.Context, siteID string, count int) error
}

// ImpactMetricRepository reads the externally supplied environmental metric rows
type ImpactMetricRepository interface {
	// List returns all metric rows
	List(ctx context.Context) ([]*entity.ImpactMetric, error)
}

// NotificationRepository persists site admin notifications
type NotificationRepository interface {
	// Create saves a new notification
	Create(ctx context.Context, notification *entity.SiteNotification) error

	// List returns notifications newest first, optionally only unread ones
	List(ctx context.Context, unreadOnly bool) ([]*entity.SiteNotification, error)

	// MarkRead flags a notification as read
	//
	// Possible errors:
	// - ErrNotificationNotFound: If the notification doesn't exist
	MarkRead(ctx context.Context, id string) error
}

// ProfileRepository reads payer profile information
type ProfileRepository interface {
	// GetByID retrieves a profile by ID
	//
	// Possible errors:
	// - ErrProfileNotFound: If the profile doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Profile, error)

	// ListByIDs returns the profiles for the given IDs; missing IDs are
	// silently omitted, mirroring an inner join
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Profile, error)
}
