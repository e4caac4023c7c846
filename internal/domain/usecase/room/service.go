package room

import (
	"context"
	"strconv"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
)

// Service implements the contribution room business logic
type Service struct {
	rooms    persistence.RoomRepository
	sites    persistence.SiteRepository
	uow      persistence.UnitOfWork
	feed     persistence.ChangeFeed
	gateway  payment.Gateway
	tracker  *ProgressTracker
	time     coreport.TimeProvider
	logger   coreport.Logger
	minimum  int64
}

// NewService creates a room service instance
func NewService(
	rooms persistence.RoomRepository,
	sites persistence.SiteRepository,
	uow persistence.UnitOfWork,
	feed persistence.ChangeFeed,
	gateway payment.Gateway,
	tracker *ProgressTracker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	minimumContribution int64,
) usecase.RoomUseCase {
	return &Service{
		rooms:   rooms,
		sites:   sites,
		uow:     uow,
		feed:    feed,
		gateway: gateway,
		tracker: tracker,
		time:    timeProvider,
		logger:  logger,
		minimum: minimumContribution,
	}
}

// CreateRoom validates and persists a new active room
func (s *Service) CreateRoom(ctx context.Context, req usecase.CreateRoomRequest) (*entity.ContributionRoom, error) {
	if _, err := s.sites.GetByID(ctx, req.SiteID); err != nil {
		return nil, err
	}

	room, err := entity.NewContributionRoom(
		req.Title,
		req.Description,
		req.GoalAmount,
		req.TargetTrees,
		req.TreeSpecies,
		req.SiteID,
		req.Deadline,
		req.CreatedBy,
		s.time,
	)
	if err != nil {
		return nil, err
	}

	if err := s.rooms.CreateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to create contribution room", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Contribution room created", map[string]any{
		"room_id":     room.ID,
		"goal_amount": room.GoalAmount,
		"deadline":    room.Deadline,
	})
	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableContributionRooms, Action: persistence.ActionInsert})

	return room, nil
}

// ListRooms returns the derived progress of active and completed rooms
func (s *Service) ListRooms(ctx context.Context) ([]entity.RoomProgress, error) {
	return s.tracker.Snapshot(ctx)
}

// GetRoomDetail returns one room with progress and completed contributions
func (s *Service) GetRoomDetail(ctx context.Context, roomID string) (*usecase.RoomDetail, error) {
	room, err := s.rooms.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	contributions, err := s.rooms.ListCompletedContributions(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return &usecase.RoomDetail{
		Room:          room,
		Progress:      s.tracker.For(ctx, room),
		Contributions: contributions,
	}, nil
}

// Contribute validates a pooled contribution against the room state and the
// configured minimum, persists it pending and returns the gateway form post
func (s *Service) Contribute(ctx context.Context, req usecase.ContributeRequest) (*usecase.InitiatedPayment, error) {
	room, err := s.rooms.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.AcceptsContributions() {
		return nil, errs.NewContributionError(req.RoomID, req.UserID, req.Amount, errs.ErrRoomNotActive)
	}

	contribution, err := entity.NewRoomContribution(
		req.RoomID,
		req.UserID,
		req.Amount,
		s.minimum,
		req.Message,
		req.IsAnonymous,
		s.time,
	)
	if err != nil {
		return nil, errs.NewContributionError(req.RoomID, req.UserID, req.Amount, err)
	}

	if err := s.rooms.CreateContribution(ctx, contribution); err != nil {
		s.logger.Error("Failed to create room contribution", map[string]any{
			"room_id": req.RoomID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableRoomContributions, Action: persistence.ActionInsert})

	return &usecase.InitiatedPayment{
		RecordID: contribution.ID,
		FormPost: s.gateway.BuildFormPost(payment.FormRequest{
			Amount:     contribution.Amount,
			TrackingID: contribution.ID,
			RoomScoped: true,
		}),
	}, nil
}

// FinalizeContribution handles the gateway success callback for a room
// contribution. The status transition, the room rollup and any goal-reached
// room completion commit as one transaction.
func (s *Service) FinalizeContribution(ctx context.Context, cb payment.Callback) (*entity.RoomContribution, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	contribution, err := s.finalizeInTx(txCtx, cb)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back contribution finalization", map[string]any{
				"order_id": cb.OrderID,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableRoomContributions, Action: persistence.ActionUpdate})
	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableContributionRooms, Action: persistence.ActionUpdate})

	return contribution, nil
}

func (s *Service) finalizeInTx(txCtx context.Context, cb payment.Callback) (*entity.RoomContribution, error) {
	rooms := s.uow.Rooms(txCtx)

	contribution, err := rooms.GetContributionByID(txCtx, cb.OrderID)
	if err != nil {
		return nil, err
	}
	// A replayed callback for an already-finalized contribution is answered
	// with the stored record; the rollup must not run twice.
	if contribution.PaymentStatus == entity.PaymentCompleted {
		return contribution, nil
	}
	if contribution.Amount != cb.Amount {
		return nil, errs.NewCallbackError(cb.OrderID, strconv.FormatInt(cb.Amount, 10), cb.RefID,
			"amount mismatch", errs.ErrAmountMismatch)
	}

	if err := contribution.MarkCompleted(); err != nil {
		return nil, err
	}
	if err := rooms.UpdateContribution(txCtx, contribution); err != nil {
		return nil, err
	}

	room, err := rooms.GetRoomByID(txCtx, contribution.RoomID)
	if err != nil {
		return nil, err
	}
	goalReached := room.ApplyContribution(contribution.Amount)
	if err := rooms.UpdateRoom(txCtx, room); err != nil {
		return nil, err
	}

	if goalReached {
		s.logger.Info("Contribution room goal reached", map[string]any{
			"room_id":        room.ID,
			"goal_amount":    room.GoalAmount,
			"current_amount": room.CurrentAmount,
		})
	}

	return contribution, nil
}

// FailContribution handles the gateway failure callback
func (s *Service) FailContribution(ctx context.Context, contributionID string) error {
	contribution, err := s.rooms.GetContributionByID(ctx, contributionID)
	if err != nil {
		return err
	}
	if err := contribution.MarkFailed(); err != nil {
		return err
	}
	if err := s.rooms.UpdateContribution(ctx, contribution); err != nil {
		return err
	}
	s.feed.Publish(persistence.ChangeEvent{Table: persistence.TableRoomContributions, Action: persistence.ActionUpdate})
	return nil
}
