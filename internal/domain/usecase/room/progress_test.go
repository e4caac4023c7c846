package room

import (
	"context"
	"errors"
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

func TestProgressPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		current  int64
		goal     int64
		expected float64
	}{
		{"zero progress", 0, 1000, 0},
		{"halfway", 500, 1000, 50},
		{"exactly at goal", 1000, 1000, 100},
		{"overshoot clamps to 100", 1250, 1000, 100},
		{"zero goal guards division", 500, 0, 0},
		{"fractional progress", 1, 3, 100.0 / 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ProgressPercentage(tc.current, tc.goal), 1e-9)
		})
	}
}

func TestRemainingDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		deadline time.Time
		expected int
	}{
		{"ten days out", now.Add(10 * 24 * time.Hour), 10},
		{"partial day rounds up", now.Add(24*time.Hour + time.Minute), 2},
		{"under a day rounds up to one", now.Add(time.Hour), 1},
		{"deadline now", now, 0},
		{"deadline passed floors at zero", now.Add(-48 * time.Hour), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RemainingDays(tc.deadline, now))
		})
	}
}

func TestProgressTrackerSnapshot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newTracker := func(rooms *persistencemocks.MockRoomRepository) *ProgressTracker {
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(now)
		mockLogger := new(coremocks.MockLogger)
		mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
		mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
		return NewProgressTracker(rooms, mockTime, mockLogger)
	}

	t.Run("builds progress for active and completed rooms", func(t *testing.T) {
		rooms := new(persistencemocks.MockRoomRepository)
		rooms.On("ListRooms", ctx, entity.RoomActive, entity.RoomCompleted).Return([]*entity.ContributionRoom{
			{
				ID: "room-1", Title: "School drive", GoalAmount: 1000, CurrentAmount: 250,
				TargetTrees: 10, Status: entity.RoomActive, Deadline: now.Add(5 * 24 * time.Hour),
			},
			{
				ID: "room-2", Title: "Office pool", GoalAmount: 500, CurrentAmount: 800,
				TargetTrees: 5, Status: entity.RoomCompleted, Deadline: now.Add(-24 * time.Hour),
			},
		}, nil)
		rooms.On("CountCompletedContributions", ctx, "room-1").Return(int64(3), nil)
		rooms.On("CountCompletedContributions", ctx, "room-2").Return(int64(12), nil)

		progress, err := newTracker(rooms).Snapshot(ctx)

		require.NoError(t, err)
		require.Len(t, progress, 2)

		assert.Equal(t, "room-1", progress[0].RoomID)
		assert.Equal(t, 25.0, progress[0].ProgressPercentage)
		assert.Equal(t, 5, progress[0].RemainingDays)
		assert.Equal(t, int64(3), progress[0].ContributionCount)

		assert.Equal(t, 100.0, progress[1].ProgressPercentage, "overshoot clamped")
		assert.Equal(t, 0, progress[1].RemainingDays, "expired deadline floors at zero")
		assert.Equal(t, int64(12), progress[1].ContributionCount)
	})

	t.Run("failed contribution count degrades to zero", func(t *testing.T) {
		rooms := new(persistencemocks.MockRoomRepository)
		rooms.On("ListRooms", ctx, entity.RoomActive, entity.RoomCompleted).Return([]*entity.ContributionRoom{
			{ID: "room-1", GoalAmount: 1000, Status: entity.RoomActive, Deadline: now.Add(24 * time.Hour)},
		}, nil)
		rooms.On("CountCompletedContributions", ctx, "room-1").Return(int64(0), errors.New("timeout"))

		progress, err := newTracker(rooms).Snapshot(ctx)

		require.NoError(t, err)
		require.Len(t, progress, 1)
		assert.Zero(t, progress[0].ContributionCount)
	})

	t.Run("room query failure is returned to the caller", func(t *testing.T) {
		rooms := new(persistencemocks.MockRoomRepository)
		rooms.On("ListRooms", ctx, entity.RoomActive, entity.RoomCompleted).Return(nil, errs.ErrDatabaseConnection)

		_, err := newTracker(rooms).Snapshot(ctx)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
