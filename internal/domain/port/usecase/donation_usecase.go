package usecase

import (
	"context"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
)

// InitiateDonationRequest carries everything needed to open a pending donation
type InitiateDonationRequest struct {
	UserID      string
	SiteID      string
	Amount      int64
	TreesCount  int
	TreeSpecies string
	Message     string
	IsAnonymous bool
}

// InitiatedPayment pairs the pending record with the gateway form the
// presentation layer must submit
type InitiatedPayment struct {
	RecordID string
	FormPost payment.FormPost
}

// DonationUseCase owns the donation write path: opening pending donations and
// finalizing them from gateway callbacks.
type DonationUseCase interface {
	// Initiate validates the request, persists a pending donation and returns
	// the gateway form post
	Initiate(ctx context.Context, req InitiateDonationRequest) (*InitiatedPayment, error)

	// GetByID returns one donation
	GetByID(ctx context.Context, id string) (*entity.Donation, error)

	// ListByUser returns a payer's donations, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Donation, error)

	// Finalize handles the gateway success callback: marks the donation
	// completed, creates its tree records, bumps the site counter and notifies
	// the site admin, all in one transaction. A repeated callback for an
	// already-completed donation returns the stored donation unchanged.
	Finalize(ctx context.Context, cb payment.Callback) (*entity.Donation, error)

	// Fail handles the gateway failure callback for a pending donation
	Fail(ctx context.Context, donationID string) error
}
