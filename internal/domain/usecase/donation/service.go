package donation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
)

// Service implements the donation business logic
type Service struct {
	donations persistence.DonationRepository
	uow       persistence.UnitOfWork
	feed      persistence.ChangeFeed
	gateway   payment.Gateway
	time      coreport.TimeProvider
	logger    coreport.Logger
}

// NewService creates a donation service instance
func NewService(
	donations persistence.DonationRepository,
	uow persistence.UnitOfWork,
	feed persistence.ChangeFeed,
	gateway payment.Gateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.DonationUseCase {
	return &Service{
		donations: donations,
		uow:       uow,
		feed:      feed,
		gateway:   gateway,
		time:      timeProvider,
		logger:    logger,
	}
}

// Initiate validates the request, persists a pending donation and returns the
// gateway form post for the presentation layer to submit
func (s *Service) Initiate(ctx context.Context, req usecase.InitiateDonationRequest) (*usecase.InitiatedPayment, error) {
	donation, err := entity.NewDonation(
		req.UserID,
		req.SiteID,
		req.Amount,
		req.TreesCount,
		req.TreeSpecies,
		req.Message,
		req.IsAnonymous,
		s.time,
	)
	if err != nil {
		return nil, err
	}

	if err := s.donations.Create(ctx, donation); err != nil {
		s.logger.Error("Failed to create pending donation", map[string]any{
			"user_id": req.UserID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Donation initiated", map[string]any{
		"donation_id": donation.ID,
		"amount":      donation.Amount,
		"trees_count": donation.TreesCount,
	})
	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableDonations, Action: persistence.ActionInsert})

	return &usecase.InitiatedPayment{
		RecordID: donation.ID,
		FormPost: s.gateway.BuildFormPost(payment.FormRequest{
			Amount:     donation.Amount,
			TrackingID: donation.ID,
		}),
	}, nil
}

// GetByID returns one donation
func (s *Service) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	return s.donations.GetByID(ctx, id)
}

// ListByUser returns a payer's donations, newest first
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*entity.Donation, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return s.donations.ListByUser(ctx, userID)
}

// Finalize handles the gateway success callback. The status transition, the
// tree records, the site counter bump and the admin notification commit as one
// transaction; a crash can no longer leave a completed donation without its
// trees.
func (s *Service) Finalize(ctx context.Context, cb payment.Callback) (*entity.Donation, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	donation, err := s.finalizeInTx(txCtx, cb)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back donation finalization", map[string]any{
				"order_id": cb.OrderID,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Donation completed", map[string]any{
		"donation_id": donation.ID,
		"amount":      donation.Amount,
		"trees_count": donation.TreesCount,
		"ref_id":      cb.RefID,
	})
	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableDonations, Action: persistence.ActionUpdate})

	return donation, nil
}

func (s *Service) finalizeInTx(txCtx context.Context, cb payment.Callback) (*entity.Donation, error) {
	donations := s.uow.Donations(txCtx)

	donation, err := donations.GetByID(txCtx, cb.OrderID)
	if err != nil {
		return nil, err
	}
	// A replayed success callback is answered with the stored donation;
	// trees and counters must not be written twice.
	if donation.IsCompleted() {
		return donation, nil
	}
	if donation.Amount != cb.Amount {
		return nil, errs.NewCallbackError(cb.OrderID, strconv.FormatInt(cb.Amount, 10), cb.RefID,
			"amount mismatch", errs.ErrAmountMismatch)
	}

	if err := donation.MarkCompleted(s.time, cb.OrderID, cb.RefID); err != nil {
		return nil, err
	}
	if err := donations.Update(txCtx, donation); err != nil {
		return nil, err
	}

	if err := s.uow.Trees(txCtx).CreateBatch(txCtx, donation.Trees(s.time)); err != nil {
		return nil, err
	}

	if donation.SiteID != "" {
		sites := s.uow.Sites(txCtx)
		if err := sites.IncrementPlantedTrees(txCtx, donation.SiteID, donation.TreesCount); err != nil {
			return nil, err
		}
		notification := &entity.SiteNotification{
			ID:               donation.ID + "-notice",
			SiteID:           donation.SiteID,
			NotificationType: "donation",
			Title:            "New donation received",
			Message: fmt.Sprintf("NPR %d donated for %d %s tree(s)",
				donation.Amount, donation.TreesCount, donation.TreeSpecies),
			CreatedAt: s.time.Now(),
		}
		if err := s.uow.Notifications(txCtx).Create(txCtx, notification); err != nil {
			return nil, err
		}
	}

	return donation, nil
}

// Fail handles the gateway failure callback for a pending donation
func (s *Service) Fail(ctx context.Context, donationID string) error {
	donation, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return err
	}
	if err := donation.MarkFailed(); err != nil {
		return err
	}
	if err := s.donations.Update(ctx, donation); err != nil {
		return err
	}

	s.logger.Warn("Donation payment failed", map[string]any{
		"donation_id": donationID,
	})
	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableDonations, Action: persistence.ActionUpdate})
	return nil
}
