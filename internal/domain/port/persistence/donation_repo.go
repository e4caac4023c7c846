package persistence

import (
	"context"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// DonationRepository defines essential methods to interact with donation data
type DonationRepository interface {
	// Create saves a new pending donation
	//
	// Possible errors:
	// - ErrDuplicateRecord: If a donation with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, donation *entity.Donation) error

	// GetByID retrieves a donation by its identifier, which doubles as the
	// gateway tracking ID
	//
	// Possible errors:
	// - ErrDonationNotFound: If the donation doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Donation, error)

	// Update persists status transitions and gateway identifiers
	//
	// Possible errors:
	// - ErrDonationNotFound: If the donation doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, donation *entity.Donation) error

	// ListCompleted returns all completed donations ordered by creation time.
	// The aggregation core filters and groups these rows client-side, the way
	// the derived views are defined.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListCompleted(ctx context.Context) ([]*entity.Donation, error)

	// ListByUser returns all donations of one payer, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID string) ([]*entity.Donation, error)
}

// TreeRepository persists the individual tree records created when a
// donation completes
type TreeRepository interface {
	// CreateBatch inserts one row per tree in a single statement
	CreateBatch(ctx context.Context, trees []*entity.Tree) error

	// CountBySite returns the number of tree rows referencing a site
	CountBySite(ctx context.Context, siteID string) (int64, error)
}
