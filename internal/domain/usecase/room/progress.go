package room

import (
	"context"
	"math"
	"time"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
)

// ProgressTracker derives the funding progress of contribution rooms
type ProgressTracker struct {
	rooms  persistence.RoomRepository
	time   coreport.TimeProvider
	logger coreport.Logger
}

// NewProgressTracker creates a room progress tracker
func NewProgressTracker(
	rooms persistence.RoomRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ProgressTracker {
	return &ProgressTracker{
		rooms:  rooms,
		time:   timeProvider,
		logger: logger,
	}
}

// Snapshot computes the progress of all active and completed rooms. The
// contribution count is a separate query per room, matching the per-room
// rollup the views are defined over.
func (t *ProgressTracker) Snapshot(ctx context.Context) ([]entity.RoomProgress, error) {
	rooms, err := t.rooms.ListRooms(ctx, entity.RoomActive, entity.RoomCompleted)
	if err != nil {
		t.logger.Error("Failed to list contribution rooms", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	now := t.time.Now()
	progress := make([]entity.RoomProgress, 0, len(rooms))
	for _, r := range rooms {
		count, err := t.rooms.CountCompletedContributions(ctx, r.ID)
		if err != nil {
			t.logger.Warn("Failed to count room contributions", map[string]any{
				"room_id": r.ID,
				"error":   err.Error(),
			})
			count = 0
		}
		progress = append(progress, t.build(r, count, now))
	}
	return progress, nil
}

// For computes the progress of a single room
func (t *ProgressTracker) For(ctx context.Context, r *entity.ContributionRoom) entity.RoomProgress {
	count, err := t.rooms.CountCompletedContributions(ctx, r.ID)
	if err != nil {
		t.logger.Warn("Failed to count room contributions", map[string]any{
			"room_id": r.ID,
			"error":   err.Error(),
		})
		count = 0
	}
	return t.build(r, count, t.time.Now())
}

func (t *ProgressTracker) build(r *entity.ContributionRoom, count int64, now time.Time) entity.RoomProgress {
	return entity.RoomProgress{
		RoomID:             r.ID,
		Title:              r.Title,
		Description:        r.Description,
		TreeSpecies:        r.TreeSpecies,
		SiteID:             r.SiteID,
		Status:             r.Status,
		GoalAmount:         r.GoalAmount,
		CurrentAmount:      r.CurrentAmount,
		TargetTrees:        r.TargetTrees,
		ProgressPercentage: ProgressPercentage(r.CurrentAmount, r.GoalAmount),
		RemainingDays:      RemainingDays(r.Deadline, now),
		ContributionCount:  count,
	}
}

// ProgressPercentage is the room's percent-complete, clamped at 100
func ProgressPercentage(current, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(goal)*100, 100)
}

// RemainingDays is the whole days left until the deadline, rounded up and
// floored at zero
func RemainingDays(deadline, now time.Time) int {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}
