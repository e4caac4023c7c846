package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coremocks "github.com/rotaryroots/hariyo-ban/mocks/port/core"
	persistencemocks "github.com/rotaryroots/hariyo-ban/mocks/port/persistence"
)

func donationFor(userID string, amount int64, trees int, anonymous bool) *entity.Donation {
	return &entity.Donation{
		UserID:        userID,
		Amount:        amount,
		TreesCount:    trees,
		IsAnonymous:   anonymous,
		PaymentStatus: entity.PaymentCompleted,
		CreatedAt:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newRanker(donations *persistencemocks.MockDonationRepository, profiles *persistencemocks.MockProfileRepository) *Ranker {
	mockLogger := new(coremocks.MockLogger)
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	return NewRanker(donations, profiles, mockLogger)
}

func TestRankerCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("groups by payer and ranks by amount descending", func(t *testing.T) {
		donations := new(persistencemocks.MockDonationRepository)
		profiles := new(persistencemocks.MockProfileRepository)

		donations.On("ListCompleted", ctx).Return([]*entity.Donation{
			donationFor("user-1", 100, 1, false),
			donationFor("user-2", 300, 3, false),
			donationFor("user-1", 50, 1, false),
		}, nil)
		profiles.On("ListByIDs", ctx, []string{"user-1", "user-2"}).Return([]*entity.Profile{
			{ID: "user-1", FullName: "Priya Sharma", City: "Kathmandu", IsRotaryMember: true},
			{ID: "user-2", FullName: "Rajesh Thapa", City: "Lalitpur"},
		}, nil)

		entries, err := newRanker(donations, profiles).Compute(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "Rajesh Thapa", entries[0].Name)
		assert.Equal(t, int64(300), entries[0].Amount)
		assert.Equal(t, int64(3), entries[0].Trees)
		assert.Equal(t, "RT", entries[0].Avatar)

		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, "Priya Sharma", entries[1].Name)
		assert.Equal(t, int64(150), entries[1].Amount, "two donations summed")
		assert.Equal(t, int64(2), entries[1].Trees)
		assert.True(t, entries[1].IsRotaryMember)
	})

	t.Run("anonymous donations are excluded", func(t *testing.T) {
		donations := new(persistencemocks.MockDonationRepository)
		profiles := new(persistencemocks.MockProfileRepository)

		donations.On("ListCompleted", ctx).Return([]*entity.Donation{
			donationFor("user-1", 100, 1, false),
			donationFor("user-1", 9000, 90, true),
			donationFor("user-2", 200, 2, true),
		}, nil)
		profiles.On("ListByIDs", ctx, []string{"user-1"}).Return([]*entity.Profile{
			{ID: "user-1", FullName: "Priya Sharma"},
		}, nil)

		entries, err := newRanker(donations, profiles).Compute(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(100), entries[0].Amount, "anonymous amount not mixed in")
	})

	t.Run("ties keep first-appearance order", func(t *testing.T) {
		donations := new(persistencemocks.MockDonationRepository)
		profiles := new(persistencemocks.MockProfileRepository)

		donations.On("ListCompleted", ctx).Return([]*entity.Donation{
			donationFor("user-1", 100, 1, false),
			donationFor("user-2", 100, 2, false),
		}, nil)
		profiles.On("ListByIDs", ctx, []string{"user-1", "user-2"}).Return([]*entity.Profile{
			{ID: "user-1", FullName: "First Donor"},
			{ID: "user-2", FullName: "Second Donor"},
		}, nil)

		entries, err := newRanker(donations, profiles).Compute(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "First Donor", entries[0].Name)
		assert.Equal(t, "Second Donor", entries[1].Name)
	})

	t.Run("payers without a profile row are dropped", func(t *testing.T) {
		donations := new(persistencemocks.MockDonationRepository)
		profiles := new(persistencemocks.MockProfileRepository)

		donations.On("ListCompleted", ctx).Return([]*entity.Donation{
			donationFor("user-1", 100, 1, false),
			donationFor("ghost", 9999, 99, false),
		}, nil)
		profiles.On("ListByIDs", ctx, []string{"user-1", "ghost"}).Return([]*entity.Profile{
			{ID: "user-1", FullName: "Priya Sharma"},
		}, nil)

		entries, err := newRanker(donations, profiles).Compute(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Priya Sharma", entries[0].Name)
	})

	t.Run("empty ranking falls back to the sample", func(t *testing.T) {
		donations := new(persistencemocks.MockDonationRepository)
		profiles := new(persistencemocks.MockProfileRepository)

		donations.On("ListCompleted", ctx).Return([]*entity.Donation{}, nil)

		entries, err := newRanker(donations, profiles).Compute(ctx)

		require.NoError(t, err)
		assert.Equal(t, FallbackLeaderboard(), entries)
		profiles.AssertNotCalled(t, "ListByIDs")
	})

	t.Run("all payers missing profiles falls back to the sample", func(t *testing.T) {
		donations := new(persistencemocks.MockDonationRepository)
		profiles := new(persistencemocks.MockProfileRepository)

		donations.On("ListCompleted", ctx).Return([]*entity.Donation{
			donationFor("ghost", 100, 1, false),
		}, nil)
		profiles.On("ListByIDs", ctx, []string{"ghost"}).Return([]*entity.Profile{}, nil)

		entries, err := newRanker(donations, profiles).Compute(ctx)

		require.NoError(t, err)
		assert.Equal(t, FallbackLeaderboard(), entries)
	})

	t.Run("query failures are returned to the caller", func(t *testing.T) {
		donations := new(persistencemocks.MockDonationRepository)
		profiles := new(persistencemocks.MockProfileRepository)

		donations.On("ListCompleted", ctx).Return(nil, errs.ErrDatabaseConnection)

		_, err := newRanker(donations, profiles).Compute(ctx)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestFallbackLeaderboard(t *testing.T) {
	entries := FallbackLeaderboard()
	require.Len(t, entries, 3)
	assert.Equal(t, "Priya Sharma", entries[0].Name)
	assert.Equal(t, int64(25000), entries[0].Amount)
	assert.Equal(t, "Rajesh Thapa", entries[1].Name)
	assert.Equal(t, "Anita Gurung", entries[2].Name)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
}
