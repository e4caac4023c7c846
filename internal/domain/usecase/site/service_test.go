package site

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
	coremocks "github.com/rotaryroots/hariyo-ban/mocks/port/core"
	persistencemocks "github.com/rotaryroots/hariyo-ban/mocks/port/persistence"
)

type siteServiceFixture struct {
	sites         *persistencemocks.MockSiteRepository
	notifications *persistencemocks.MockNotificationRepository
	service       usecase.SiteUseCase
}

func newSiteServiceFixture(now time.Time) *siteServiceFixture {
	f := &siteServiceFixture{
		sites:         new(persistencemocks.MockSiteRepository),
		notifications: new(persistencemocks.MockNotificationRepository),
	}
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(now)
	mockLogger := new(coremocks.MockLogger)
	mockLogger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	f.service = NewService(f.sites, f.notifications, mockTime, mockLogger)
	return f
}

func TestSiteServiceListSites(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("all sites", func(t *testing.T) {
		f := newSiteServiceFixture(now)
		expected := []*entity.PlantingSite{{ID: "site-1"}, {ID: "site-2"}}
		f.sites.On("List", ctx).Return(expected, nil)

		sites, err := f.service.ListSites(ctx, false)

		require.NoError(t, err)
		assert.Equal(t, expected, sites)
	})

	t.Run("active only includes planning sites", func(t *testing.T) {
		f := newSiteServiceFixture(now)
		f.sites.On("ListByStatus", ctx, entity.SiteActive, entity.SitePlanning).
			Return([]*entity.PlantingSite{{ID: "site-1", Status: entity.SitePlanning}}, nil)

		sites, err := f.service.ListSites(ctx, true)

		require.NoError(t, err)
		require.Len(t, sites, 1)
		f.sites.AssertNotCalled(t, "List")
	})
}

func TestSiteServiceCreateSite(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	validRequest := usecase.CreateSiteRequest{
		Name:        "Shivapuri Buffer Zone",
		Description: "Reforestation on the northern ridge",
		Address:     "Budhanilkantha, Kathmandu",
		Latitude:    27.8,
		Longitude:   85.36,
		TargetTrees: 5000,
		SiteAdminID: "admin-1",
	}

	t.Run("creates a site defaulting to planning status", func(t *testing.T) {
		f := newSiteServiceFixture(now)
		f.sites.On("Create", ctx, mock.AnythingOfType("*entity.PlantingSite")).Return(nil)

		site, err := f.service.CreateSite(ctx, validRequest)

		require.NoError(t, err)
		assert.NotEmpty(t, site.ID)
		assert.Equal(t, entity.SitePlanning, site.Status)
		assert.Zero(t, site.PlantedTrees)
		assert.Equal(t, now, site.CreatedAt)
		assert.Equal(t, now, site.UpdatedAt)
	})

	t.Run("explicit status is honored", func(t *testing.T) {
		f := newSiteServiceFixture(now)
		f.sites.On("Create", ctx, mock.AnythingOfType("*entity.PlantingSite")).Return(nil)

		req := validRequest
		req.Status = entity.SiteActive
		site, err := f.service.CreateSite(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, entity.SiteActive, site.Status)
	})

	t.Run("missing name or address rejected", func(t *testing.T) {
		f := newSiteServiceFixture(now)

		req := validRequest
		req.Name = ""
		_, err := f.service.CreateSite(ctx, req)
		assert.ErrorIs(t, err, errs.ErrInvalidTitle)

		req = validRequest
		req.Address = ""
		_, err = f.service.CreateSite(ctx, req)
		assert.ErrorIs(t, err, errs.ErrInvalidTitle)

		f.sites.AssertNotCalled(t, "Create")
	})

	t.Run("non-positive target rejected", func(t *testing.T) {
		f := newSiteServiceFixture(now)

		req := validRequest
		req.TargetTrees = 0
		_, err := f.service.CreateSite(ctx, req)

		assert.ErrorIs(t, err, errs.ErrInvalidTreeCount)
		f.sites.AssertNotCalled(t, "Create")
	})
}

func TestSiteServiceNotifications(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("lists notifications", func(t *testing.T) {
		f := newSiteServiceFixture(now)
		expected := []*entity.SiteNotification{{ID: "n-1", IsRead: false}}
		f.notifications.On("List", ctx, true).Return(expected, nil)

		notifications, err := f.service.Notifications(ctx, true)

		require.NoError(t, err)
		assert.Equal(t, expected, notifications)
	})

	t.Run("marks a notification read", func(t *testing.T) {
		f := newSiteServiceFixture(now)
		f.notifications.On("MarkRead", ctx, "n-1").Return(nil)

		assert.NoError(t, f.service.MarkNotificationRead(ctx, "n-1"))
	})

	t.Run("empty notification ID rejected", func(t *testing.T) {
		f := newSiteServiceFixture(now)

		err := f.service.MarkNotificationRead(ctx, "")

		assert.ErrorIs(t, err, errs.ErrNotificationNotFound)
		f.notifications.AssertNotCalled(t, "MarkRead")
	})
}
