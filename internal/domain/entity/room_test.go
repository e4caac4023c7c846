package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coremocks "github.com/rotaryroots/hariyo-ban/mocks/port/core"
)

func TestNewContributionRoom(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	deadline := fixedTime.Add(30 * 24 * time.Hour)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("valid room creation", func(t *testing.T) {
		room, err := NewContributionRoom("Class of 2025", "Alumni tree drive", 5000, 50, "Pine", "site-1", deadline, "user-1", mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, room.ID)
		assert.Equal(t, RoomActive, room.Status)
		assert.Equal(t, int64(5000), room.GoalAmount)
		assert.Zero(t, room.CurrentAmount)
		assert.Equal(t, deadline, room.Deadline)
		assert.Equal(t, fixedTime, room.CreatedAt)
		assert.True(t, room.AcceptsContributions())
	})

	t.Run("missing title or description rejected", func(t *testing.T) {
		_, err := NewContributionRoom("", "desc", 5000, 50, "Pine", "site-1", deadline, "user-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidTitle)

		_, err = NewContributionRoom("title", "", 5000, 50, "Pine", "site-1", deadline, "user-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidTitle)
	})

	t.Run("goal below minimum rejected", func(t *testing.T) {
		_, err := NewContributionRoom("title", "desc", MinimumRoomGoal-1, 50, "Pine", "site-1", deadline, "user-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidGoal)
	})

	t.Run("goal at exactly the minimum accepted", func(t *testing.T) {
		room, err := NewContributionRoom("title", "desc", MinimumRoomGoal, 50, "Pine", "site-1", deadline, "user-1", mockTime)
		require.NoError(t, err)
		assert.Equal(t, MinimumRoomGoal, room.GoalAmount)
	})

	t.Run("deadline must be in the future", func(t *testing.T) {
		_, err := NewContributionRoom("title", "desc", 5000, 50, "Pine", "site-1", fixedTime, "user-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidDeadline)

		_, err = NewContributionRoom("title", "desc", 5000, 50, "Pine", "site-1", fixedTime.Add(-time.Hour), "user-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidDeadline)
	})

	t.Run("missing creator rejected", func(t *testing.T) {
		_, err := NewContributionRoom("title", "desc", 5000, 50, "Pine", "site-1", deadline, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestRoomApplyContribution(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	newRoom := func(t *testing.T) *ContributionRoom {
		room, err := NewContributionRoom("title", "desc", 1000, 10, "Pine", "site-1", fixedTime.Add(time.Hour), "user-1", mockTime)
		require.NoError(t, err)
		return room
	}

	t.Run("contribution below goal keeps room active", func(t *testing.T) {
		room := newRoom(t)
		closed := room.ApplyContribution(400)

		assert.False(t, closed)
		assert.Equal(t, int64(400), room.CurrentAmount)
		assert.Equal(t, RoomActive, room.Status)
	})

	t.Run("contribution reaching the goal completes the room", func(t *testing.T) {
		room := newRoom(t)
		room.ApplyContribution(600)
		closed := room.ApplyContribution(400)

		assert.True(t, closed)
		assert.Equal(t, int64(1000), room.CurrentAmount)
		assert.Equal(t, RoomCompleted, room.Status)
		assert.False(t, room.AcceptsContributions())
	})

	t.Run("overshoot completes once and keeps accumulating", func(t *testing.T) {
		room := newRoom(t)
		closed := room.ApplyContribution(1500)
		assert.True(t, closed)

		// A second apply on an already-completed room must not report the
		// goal as newly reached.
		closed = room.ApplyContribution(100)
		assert.False(t, closed)
		assert.Equal(t, int64(1600), room.CurrentAmount)
		assert.Equal(t, RoomCompleted, room.Status)
	})
}

func TestNewRoomContribution(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("valid contribution creation", func(t *testing.T) {
		c, err := NewRoomContribution("room-1", "user-1", 50, 10, "Go team", true, mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "room-1", c.RoomID)
		assert.Equal(t, int64(50), c.Amount)
		assert.Equal(t, PaymentPending, c.PaymentStatus)
		assert.True(t, c.IsAnonymous)
		assert.Equal(t, fixedTime, c.CreatedAt)
	})

	t.Run("amount below the minimum rejected", func(t *testing.T) {
		_, err := NewRoomContribution("room-1", "user-1", 9, 10, "", false, mockTime)
		assert.ErrorIs(t, err, errs.ErrContributionBelowMinimum)
	})

	t.Run("amount at exactly the minimum accepted", func(t *testing.T) {
		c, err := NewRoomContribution("room-1", "user-1", 10, 10, "", false, mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(10), c.Amount)
	})

	t.Run("missing room or user rejected", func(t *testing.T) {
		_, err := NewRoomContribution("", "user-1", 50, 10, "", false, mockTime)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)

		_, err = NewRoomContribution("room-1", "", 50, 10, "", false, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("status transitions are one-way", func(t *testing.T) {
		c, err := NewRoomContribution("room-1", "user-1", 50, 10, "", false, mockTime)
		require.NoError(t, err)

		require.NoError(t, c.MarkCompleted())
		assert.Equal(t, PaymentCompleted, c.PaymentStatus)
		assert.ErrorIs(t, c.MarkFailed(), errs.ErrDonationNotPending)
		assert.ErrorIs(t, c.MarkCompleted(), errs.ErrDonationNotPending)
	})
}
