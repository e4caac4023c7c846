package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
)

// PaymentStatus defines the lifecycle states of a payment-backed record
type PaymentStatus string

// PaymentStatus constants
const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Donation represents one payment event tied to a tree quantity and species.
// Amounts are whole NPR; there is no fractional currency anywhere in the domain.
type Donation struct {
	ID                 string        // Unique identifier (UUID)
	UserID             string        // Payer profile ID
	SiteID             string        // Target planting site, may be empty
	Amount             int64         // Donation amount in whole NPR
	TreesCount         int           // Number of trees this donation plants
	TreeSpecies        string        // Free-text species name
	PaymentMethod      string        // Gateway identifier, currently always "esewa"
	PaymentStatus      PaymentStatus // Lifecycle status
	EsewaTransactionID string        // Gateway order ID, set on completion
	EsewaRefID         string        // Gateway reference ID, set on completion
	DonationMessage    string        // Optional message from the donor
	IsAnonymous        bool          // Hide the donor from named leaderboard display
	CreatedAt          time.Time     // When the donation was initiated
	CompletedAt        *time.Time    // When the gateway confirmed payment (nullable)
}

// NewDonation creates a pending donation with basic validation
func NewDonation(
	userID string,
	siteID string,
	amount int64,
	treesCount int,
	treeSpecies string,
	message string,
	isAnonymous bool,
	timeProvider coreport.TimeProvider,
) (*Donation, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if treesCount <= 0 {
		return nil, errs.ErrInvalidTreeCount
	}
	if treeSpecies == "" {
		return nil, errs.ErrInvalidSpecies
	}

	return &Donation{
		ID:              uuid.NewString(),
		UserID:          userID,
		SiteID:          siteID,
		Amount:          amount,
		TreesCount:      treesCount,
		TreeSpecies:     treeSpecies,
		PaymentMethod:   "esewa",
		PaymentStatus:   PaymentPending,
		DonationMessage: message,
		IsAnonymous:     isAnonymous,
		CreatedAt:       timeProvider.Now(),
	}, nil
}

// MarkCompleted transitions a pending donation to completed and records the
// gateway identifiers. A donation never leaves the completed state again.
func (d *Donation) MarkCompleted(timeProvider coreport.TimeProvider, transactionID, refID string) error {
	if d.PaymentStatus != PaymentPending {
		return errs.ErrDonationNotPending
	}
	now := timeProvider.Now()
	d.PaymentStatus = PaymentCompleted
	d.EsewaTransactionID = transactionID
	d.EsewaRefID = refID
	d.CompletedAt = &now
	return nil
}

// MarkFailed transitions a pending donation to the terminal failed state
func (d *Donation) MarkFailed() error {
	if d.PaymentStatus != PaymentPending {
		return errs.ErrDonationNotPending
	}
	d.PaymentStatus = PaymentFailed
	return nil
}

// IsCompleted reports whether the donation has been confirmed by the gateway
func (d *Donation) IsCompleted() bool {
	return d.PaymentStatus == PaymentCompleted
}

// CountsTowardAggregates reports whether this donation's amount and tree count
// may be included in any derived total
func (d *Donation) CountsTowardAggregates() bool {
	return d.PaymentStatus == PaymentCompleted
}

// Trees expands the donation into one Tree record per unit in TreesCount.
// Called when the donation completes.
func (d *Donation) Trees(timeProvider coreport.TimeProvider) []*Tree {
	planted := timeProvider.Now()
	trees := make([]*Tree, 0, d.TreesCount)
	for i := 0; i < d.TreesCount; i++ {
		trees = append(trees, &Tree{
			ID:          uuid.NewString(),
			DonationID:  d.ID,
			SiteID:      d.SiteID,
			Species:     d.TreeSpecies,
			Status:      TreePlanted,
			PlantedBy:   d.UserID,
			PlantedDate: planted,
		})
	}
	return trees
}
