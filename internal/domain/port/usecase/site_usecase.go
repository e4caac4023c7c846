package usecase

import (
	"context"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// CreateSiteRequest carries everything needed to register a planting site
type CreateSiteRequest struct {
	Name        string
	Description string
	Address     string
	Latitude    float64
	Longitude   float64
	TargetTrees int
	Status      entity.SiteStatus
	SiteAdminID string
}

// SiteUseCase owns planting site management and the admin notification feed
type SiteUseCase interface {
	// ListSites returns all sites, or only active/planning ones
	ListSites(ctx context.Context, activeOnly bool) ([]*entity.PlantingSite, error)

	// CreateSite registers a new planting site
	CreateSite(ctx context.Context, req CreateSiteRequest) (*entity.PlantingSite, error)

	// Notifications returns site notifications, newest first
	Notifications(ctx context.Context, unreadOnly bool) ([]*entity.SiteNotification, error)

	// MarkNotificationRead flags a notification as read
	MarkNotificationRead(ctx context.Context, id string) error
}
