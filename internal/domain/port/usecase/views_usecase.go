package usecase

import (
	"context"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// ViewsUseCase is the polling/subscribing read API exposed to the presentation
// layer: the four derived views plus a manual refetch trigger. Reads never
// fail; on upstream errors the implementation serves the documented fallback
// snapshots instead.
type ViewsUseCase interface {
	// Stats returns the latest global statistics snapshot
	Stats() entity.GlobalStats

	// Leaderboard returns the latest donor leaderboard, never empty
	Leaderboard() []entity.LeaderboardEntry

	// OrganizationLeaderboard returns the synthetic organization ranking
	// derived from the current global totals
	OrganizationLeaderboard() []entity.OrganizationEntry

	// RoomProgress returns the latest per-room funding progress
	RoomProgress() []entity.RoomProgress

	// Refetch re-runs every aggregator immediately
	Refetch(ctx context.Context)
}
