package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
	coremocks "github.com/rotaryroots/hariyo-ban/mocks/port/core"
	paymentmocks "github.com/rotaryroots/hariyo-ban/mocks/port/payment"
	persistencemocks "github.com/rotaryroots/hariyo-ban/mocks/port/persistence"
)

const minimumContribution int64 = 10

type roomServiceFixture struct {
	rooms   *persistencemocks.MockRoomRepository
	sites   *persistencemocks.MockSiteRepository
	uow     *persistencemocks.MockUnitOfWork
	feed    *persistencemocks.MockChangeFeed
	gateway *paymentmocks.MockGateway
	service usecase.RoomUseCase
}

func newRoomServiceFixture(now time.Time) *roomServiceFixture {
	f := &roomServiceFixture{
		rooms:   new(persistencemocks.MockRoomRepository),
		sites:   new(persistencemocks.MockSiteRepository),
		uow:     new(persistencemocks.MockUnitOfWork),
		feed:    new(persistencemocks.MockChangeFeed),
		gateway: new(paymentmocks.MockGateway),
	}
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(now)
	mockLogger := new(coremocks.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	f.feed.On("Publish", mock.Anything).Return().Maybe()

	tracker := NewProgressTracker(f.rooms, mockTime, mockLogger)
	f.service = NewService(f.rooms, f.sites, f.uow, f.feed, f.gateway, tracker, mockTime, mockLogger, minimumContribution)
	return f
}

func TestRoomServiceCreateRoom(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	validRequest := usecase.CreateRoomRequest{
		Title:       "School drive",
		Description: "Trees for the school yard",
		GoalAmount:  5000,
		TargetTrees: 50,
		TreeSpecies: "Pine",
		SiteID:      "site-1",
		Deadline:    now.Add(30 * 24 * time.Hour),
		CreatedBy:   "user-1",
	}

	t.Run("creates an active room", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		f.sites.On("GetByID", ctx, "site-1").Return(&entity.PlantingSite{ID: "site-1"}, nil)
		f.rooms.On("CreateRoom", ctx, mock.AnythingOfType("*entity.ContributionRoom")).Return(nil)

		room, err := f.service.CreateRoom(ctx, validRequest)

		require.NoError(t, err)
		assert.Equal(t, entity.RoomActive, room.Status)
		assert.Equal(t, int64(5000), room.GoalAmount)
		f.feed.AssertCalled(t, "Publish", persistence.ChangeEvent{
			Table: persistence.TableContributionRooms, Action: persistence.ActionInsert,
		})
	})

	t.Run("unknown site rejects the room", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		f.sites.On("GetByID", ctx, "site-1").Return(nil, errs.ErrSiteNotFound)

		_, err := f.service.CreateRoom(ctx, validRequest)

		assert.ErrorIs(t, err, errs.ErrSiteNotFound)
		f.rooms.AssertNotCalled(t, "CreateRoom")
	})

	t.Run("validation failure prevents any write", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		f.sites.On("GetByID", ctx, "site-1").Return(&entity.PlantingSite{ID: "site-1"}, nil)

		bad := validRequest
		bad.GoalAmount = entity.MinimumRoomGoal - 1
		_, err := f.service.CreateRoom(ctx, bad)

		assert.ErrorIs(t, err, errs.ErrInvalidGoal)
		f.rooms.AssertNotCalled(t, "CreateRoom")
	})
}

func TestRoomServiceContribute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	activeRoom := func() *entity.ContributionRoom {
		return &entity.ContributionRoom{
			ID: "room-1", Title: "School drive", GoalAmount: 1000,
			Status: entity.RoomActive, Deadline: now.Add(24 * time.Hour),
		}
	}

	t.Run("persists a pending contribution and returns the form post", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		f.rooms.On("GetRoomByID", ctx, "room-1").Return(activeRoom(), nil)
		f.rooms.On("CreateContribution", ctx, mock.AnythingOfType("*entity.RoomContribution")).Return(nil)
		f.gateway.On("BuildFormPost", mock.MatchedBy(func(req payment.FormRequest) bool {
			return req.Amount == 50 && req.RoomScoped && req.TrackingID != ""
		})).Return(payment.FormPost{Action: "https://uat.esewa.com.np/epay/main", Method: "POST"})

		initiated, err := f.service.Contribute(ctx, usecase.ContributeRequest{
			RoomID: "room-1", UserID: "user-1", Amount: 50,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, initiated.RecordID)
		assert.Equal(t, "POST", initiated.FormPost.Method)
		f.feed.AssertCalled(t, "Publish", persistence.ChangeEvent{
			Table: persistence.TableRoomContributions, Action: persistence.ActionInsert,
		})
	})

	t.Run("completed room rejects contributions", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		room := activeRoom()
		room.Status = entity.RoomCompleted
		f.rooms.On("GetRoomByID", ctx, "room-1").Return(room, nil)

		_, err := f.service.Contribute(ctx, usecase.ContributeRequest{
			RoomID: "room-1", UserID: "user-1", Amount: 50,
		})

		assert.ErrorIs(t, err, errs.ErrRoomNotActive)
		f.rooms.AssertNotCalled(t, "CreateContribution")
	})

	t.Run("amount below the minimum is rejected before any write", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		f.rooms.On("GetRoomByID", ctx, "room-1").Return(activeRoom(), nil)

		_, err := f.service.Contribute(ctx, usecase.ContributeRequest{
			RoomID: "room-1", UserID: "user-1", Amount: minimumContribution - 1,
		})

		assert.ErrorIs(t, err, errs.ErrContributionBelowMinimum)
		f.rooms.AssertNotCalled(t, "CreateContribution")
	})
}

func TestRoomServiceFinalizeContribution(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	pendingContribution := func() *entity.RoomContribution {
		return &entity.RoomContribution{
			ID: "contrib-1", RoomID: "room-1", UserID: "user-1",
			Amount: 400, PaymentStatus: entity.PaymentPending,
		}
	}

	t.Run("completes the contribution and rolls up the room", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		contribution := pendingContribution()
		room := &entity.ContributionRoom{ID: "room-1", GoalAmount: 1000, CurrentAmount: 300, Status: entity.RoomActive}

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Rooms", ctx).Return(f.rooms)
		f.uow.On("Commit", ctx).Return(nil)
		f.rooms.On("GetContributionByID", ctx, "contrib-1").Return(contribution, nil)
		f.rooms.On("UpdateContribution", ctx, contribution).Return(nil)
		f.rooms.On("GetRoomByID", ctx, "room-1").Return(room, nil)
		f.rooms.On("UpdateRoom", ctx, room).Return(nil)

		result, err := f.service.FinalizeContribution(ctx, payment.Callback{
			OrderID: "contrib-1", Amount: 400, RefID: "ref-1",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCompleted, result.PaymentStatus)
		assert.Equal(t, int64(700), room.CurrentAmount)
		assert.Equal(t, entity.RoomActive, room.Status, "goal not yet reached")
		f.uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("goal-reaching contribution completes the room", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		contribution := pendingContribution()
		room := &entity.ContributionRoom{ID: "room-1", GoalAmount: 1000, CurrentAmount: 600, Status: entity.RoomActive}

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Rooms", ctx).Return(f.rooms)
		f.uow.On("Commit", ctx).Return(nil)
		f.rooms.On("GetContributionByID", ctx, "contrib-1").Return(contribution, nil)
		f.rooms.On("UpdateContribution", ctx, contribution).Return(nil)
		f.rooms.On("GetRoomByID", ctx, "room-1").Return(room, nil)
		f.rooms.On("UpdateRoom", ctx, room).Return(nil)

		_, err := f.service.FinalizeContribution(ctx, payment.Callback{
			OrderID: "contrib-1", Amount: 400, RefID: "ref-1",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.RoomCompleted, room.Status)
		assert.Equal(t, int64(1000), room.CurrentAmount)
	})

	t.Run("replayed callback returns the stored contribution without a second rollup", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		contribution := pendingContribution()
		contribution.PaymentStatus = entity.PaymentCompleted

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Rooms", ctx).Return(f.rooms)
		f.uow.On("Commit", ctx).Return(nil)
		f.rooms.On("GetContributionByID", ctx, "contrib-1").Return(contribution, nil)

		result, err := f.service.FinalizeContribution(ctx, payment.Callback{
			OrderID: "contrib-1", Amount: 400, RefID: "ref-1",
		})

		require.NoError(t, err)
		assert.Equal(t, contribution, result)
		f.rooms.AssertNotCalled(t, "UpdateContribution")
		f.rooms.AssertNotCalled(t, "GetRoomByID")
	})

	t.Run("amount mismatch rolls the transaction back", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Rooms", ctx).Return(f.rooms)
		f.uow.On("Rollback", ctx).Return(nil)
		f.rooms.On("GetContributionByID", ctx, "contrib-1").Return(pendingContribution(), nil)

		_, err := f.service.FinalizeContribution(ctx, payment.Callback{
			OrderID: "contrib-1", Amount: 999, RefID: "ref-1",
		})

		assert.ErrorIs(t, err, errs.ErrAmountMismatch)
		f.uow.AssertCalled(t, "Rollback", ctx)
		f.uow.AssertNotCalled(t, "Commit")
	})

	t.Run("unknown tracking ID rolls back with the repository error", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Rooms", ctx).Return(f.rooms)
		f.uow.On("Rollback", ctx).Return(nil)
		f.rooms.On("GetContributionByID", ctx, "ghost").Return(nil, errs.ErrContributionNotFound)

		_, err := f.service.FinalizeContribution(ctx, payment.Callback{
			OrderID: "ghost", Amount: 400, RefID: "ref-1",
		})

		assert.ErrorIs(t, err, errs.ErrContributionNotFound)
	})
}

func TestRoomServiceFailContribution(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("marks a pending contribution failed", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		contribution := &entity.RoomContribution{
			ID: "contrib-1", RoomID: "room-1", Amount: 50, PaymentStatus: entity.PaymentPending,
		}
		f.rooms.On("GetContributionByID", ctx, "contrib-1").Return(contribution, nil)
		f.rooms.On("UpdateContribution", ctx, contribution).Return(nil)

		err := f.service.FailContribution(ctx, "contrib-1")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentFailed, contribution.PaymentStatus)
	})

	t.Run("already-completed contribution cannot fail", func(t *testing.T) {
		f := newRoomServiceFixture(now)
		contribution := &entity.RoomContribution{
			ID: "contrib-1", RoomID: "room-1", Amount: 50, PaymentStatus: entity.PaymentCompleted,
		}
		f.rooms.On("GetContributionByID", ctx, "contrib-1").Return(contribution, nil)

		err := f.service.FailContribution(ctx, "contrib-1")

		assert.ErrorIs(t, err, errs.ErrDonationNotPending)
		f.rooms.AssertNotCalled(t, "UpdateContribution")
	})
}
