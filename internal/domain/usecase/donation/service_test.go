package donation

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

type donationServiceFixture struct {
	donations     *persistencemocks.MockDonationRepository
	trees         *persistencemocks.MockTreeRepository
	sites         *persistencemocks.MockSiteRepository
	notifications *persistencemocks.MockNotificationRepository
	uow           *persistencemocks.MockUnitOfWork
	feed          *persistencemocks.MockChangeFeed
	gateway       *paymentmocks.MockGateway
	service       usecase.DonationUseCase
}

func newDonationServiceFixture(now time.Time) *donationServiceFixture {
	f := &donationServiceFixture{
		donations:     new(persistencemocks.MockDonationRepository),
		trees:         new(persistencemocks.MockTreeRepository),
		sites:         new(persistencemocks.MockSiteRepository),
		notifications: new(persistencemocks.MockNotificationRepository),
		uow:           new(persistencemocks.MockUnitOfWork),
		feed:          new(persistencemocks.MockChangeFeed),
		gateway:       new(paymentmocks.MockGateway),
	}
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(now)
	mockLogger := new(coremocks.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	f.feed.On("Publish", mock.Anything).Return().Maybe()

	f.service = NewService(f.donations, f.uow, f.feed, f.gateway, mockTime, mockLogger)
	return f
}

func TestDonationServiceInitiate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	validRequest := usecase.InitiateDonationRequest{
		UserID:      "user-1",
		SiteID:      "site-1",
		Amount:      500,
		TreesCount:  5,
		TreeSpecies: "Rhododendron",
	}

	t.Run("persists a pending donation and returns the form post", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		f.donations.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).Return(nil)
		f.gateway.On("BuildFormPost", mock.MatchedBy(func(req payment.FormRequest) bool {
			return req.Amount == 500 && !req.RoomScoped && req.TrackingID != ""
		})).Return(payment.FormPost{
			Action: "https://uat.esewa.com.np/epay/main",
			Method: "POST",
			Fields: map[string]string{"amt": "500"},
		})

		initiated, err := f.service.Initiate(ctx, validRequest)

		require.NoError(t, err)
		assert.NotEmpty(t, initiated.RecordID)
		assert.Equal(t, "https://uat.esewa.com.np/epay/main", initiated.FormPost.Action)
		f.feed.AssertCalled(t, "Publish", persistence.ChangeEvent{
			Table: persistence.TableDonations, Action: persistence.ActionInsert,
		})
	})

	t.Run("validation failure prevents any write", func(t *testing.T) {
		f := newDonationServiceFixture(now)

		bad := validRequest
		bad.Amount = 0
		_, err := f.service.Initiate(ctx, bad)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.donations.AssertNotCalled(t, "Create")
		f.gateway.AssertNotCalled(t, "BuildFormPost")
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		f.donations.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).Return(errs.ErrDatabaseConnection)

		_, err := f.service.Initiate(ctx, validRequest)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.gateway.AssertNotCalled(t, "BuildFormPost")
	})
}

func TestDonationServiceFinalize(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	pendingDonation := func() *entity.Donation {
		return &entity.Donation{
			ID: "donation-1", UserID: "user-1", SiteID: "site-1",
			Amount: 500, TreesCount: 5, TreeSpecies: "Rhododendron",
			PaymentStatus: entity.PaymentPending, CreatedAt: now.Add(-time.Minute),
		}
	}

	callback := payment.Callback{OrderID: "donation-1", Amount: 500, RefID: "ref-1"}

	t.Run("completes the donation, trees, counter and notification in one transaction", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		donation := pendingDonation()

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Donations", ctx).Return(f.donations)
		f.uow.On("Trees", ctx).Return(f.trees)
		f.uow.On("Sites", ctx).Return(f.sites)
		f.uow.On("Notifications", ctx).Return(f.notifications)
		f.uow.On("Commit", ctx).Return(nil)

		f.donations.On("GetByID", ctx, "donation-1").Return(donation, nil)
		f.donations.On("Update", ctx, donation).Return(nil)
		f.trees.On("CreateBatch", ctx, mock.MatchedBy(func(trees []*entity.Tree) bool {
			return len(trees) == 5 && trees[0].SiteID == "site-1"
		})).Return(nil)
		f.sites.On("IncrementPlantedTrees", ctx, "site-1", 5).Return(nil)
		f.notifications.On("Create", ctx, mock.MatchedBy(func(n *entity.SiteNotification) bool {
			return n.SiteID == "site-1" && n.NotificationType == "donation"
		})).Return(nil)

		result, err := f.service.Finalize(ctx, callback)

		require.NoError(t, err)
		assert.True(t, result.IsCompleted())
		assert.Equal(t, "ref-1", result.EsewaRefID)
		f.uow.AssertCalled(t, "Commit", ctx)
		f.feed.AssertCalled(t, "Publish", persistence.ChangeEvent{
			Table: persistence.TableDonations, Action: persistence.ActionUpdate,
		})
	})

	t.Run("donation without a site skips counter and notification", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		donation := pendingDonation()
		donation.SiteID = ""

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Donations", ctx).Return(f.donations)
		f.uow.On("Trees", ctx).Return(f.trees)
		f.uow.On("Commit", ctx).Return(nil)

		f.donations.On("GetByID", ctx, "donation-1").Return(donation, nil)
		f.donations.On("Update", ctx, donation).Return(nil)
		f.trees.On("CreateBatch", ctx, mock.Anything).Return(nil)

		_, err := f.service.Finalize(ctx, callback)

		require.NoError(t, err)
		f.sites.AssertNotCalled(t, "IncrementPlantedTrees")
		f.notifications.AssertNotCalled(t, "Create")
	})

	t.Run("replayed callback returns the stored donation without new writes", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		donation := pendingDonation()
		completedAt := now.Add(-time.Minute)
		donation.PaymentStatus = entity.PaymentCompleted
		donation.EsewaRefID = "ref-original"
		donation.CompletedAt = &completedAt

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Donations", ctx).Return(f.donations)
		f.uow.On("Commit", ctx).Return(nil)
		f.donations.On("GetByID", ctx, "donation-1").Return(donation, nil)

		result, err := f.service.Finalize(ctx, callback)

		require.NoError(t, err)
		assert.Equal(t, "ref-original", result.EsewaRefID, "stored identifiers untouched")
		f.donations.AssertNotCalled(t, "Update")
		f.trees.AssertNotCalled(t, "CreateBatch")
		f.sites.AssertNotCalled(t, "IncrementPlantedTrees")
	})

	t.Run("amount mismatch rolls the transaction back", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Donations", ctx).Return(f.donations)
		f.uow.On("Rollback", ctx).Return(nil)
		f.donations.On("GetByID", ctx, "donation-1").Return(pendingDonation(), nil)

		_, err := f.service.Finalize(ctx, payment.Callback{OrderID: "donation-1", Amount: 999, RefID: "ref-1"})

		assert.ErrorIs(t, err, errs.ErrAmountMismatch)
		f.uow.AssertCalled(t, "Rollback", ctx)
		f.uow.AssertNotCalled(t, "Commit")
		f.donations.AssertNotCalled(t, "Update")
	})

	t.Run("tree write failure rolls everything back", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		donation := pendingDonation()

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Donations", ctx).Return(f.donations)
		f.uow.On("Trees", ctx).Return(f.trees)
		f.uow.On("Rollback", ctx).Return(nil)

		f.donations.On("GetByID", ctx, "donation-1").Return(donation, nil)
		f.donations.On("Update", ctx, donation).Return(nil)
		f.trees.On("CreateBatch", ctx, mock.Anything).Return(errs.ErrDatabaseConnection)

		_, err := f.service.Finalize(ctx, callback)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.uow.AssertCalled(t, "Rollback", ctx)
		f.uow.AssertNotCalled(t, "Commit")
	})

	t.Run("unknown order ID rolls back with the repository error", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("Donations", ctx).Return(f.donations)
		f.uow.On("Rollback", ctx).Return(nil)
		f.donations.On("GetByID", ctx, "ghost").Return(nil, errs.ErrDonationNotFound)

		_, err := f.service.Finalize(ctx, payment.Callback{OrderID: "ghost", Amount: 500})

		assert.ErrorIs(t, err, errs.ErrDonationNotFound)
	})
}

func TestDonationServiceFail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("marks a pending donation failed", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		donation := &entity.Donation{ID: "donation-1", PaymentStatus: entity.PaymentPending}
		f.donations.On("GetByID", ctx, "donation-1").Return(donation, nil)
		f.donations.On("Update", ctx, donation).Return(nil)

		err := f.service.Fail(ctx, "donation-1")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentFailed, donation.PaymentStatus)
	})

	t.Run("completed donation cannot fail", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		donation := &entity.Donation{ID: "donation-1", PaymentStatus: entity.PaymentCompleted}
		f.donations.On("GetByID", ctx, "donation-1").Return(donation, nil)

		err := f.service.Fail(ctx, "donation-1")

		assert.ErrorIs(t, err, errs.ErrDonationNotPending)
		f.donations.AssertNotCalled(t, "Update")
	})
}

func TestDonationServiceListByUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty user ID rejected", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		_, err := f.service.ListByUser(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		f := newDonationServiceFixture(now)
		expected := []*entity.Donation{{ID: "donation-1"}}
		f.donations.On("ListByUser", ctx, "user-1").Return(expected, nil)

		donations, err := f.service.ListByUser(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, expected, donations)
	})
}
