package persistence

import (
	"context"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// RoomRepository defines essential methods to interact with contribution rooms
// and their pooled contributions
type RoomRepository interface {
	// CreateRoom saves a new contribution room
	CreateRoom(ctx context.Context, room *entity.ContributionRoom) error

	// GetRoomByID retrieves a room by ID
	//
	// Possible errors:
	// - ErrRoomNotFound: If the room doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetRoomByID(ctx context.Context, id string) (*entity.ContributionRoom, error)

	// UpdateRoom persists room changes, including the running total and
	// status transitions
	UpdateRoom(ctx context.Context, room *entity.ContributionRoom) error

	// ListRooms returns rooms whose status is in the given set, newest first
	ListRooms(ctx context.Context, statuses ...entity.RoomStatus) ([]*entity.ContributionRoom, error)

	// CreateContribution saves a new pending room contribution
	CreateContribution(ctx context.Context, contribution *entity.RoomContribution) error

	// GetContributionByID retrieves a contribution by its identifier, which
	// doubles as the gateway tracking ID
	//
	// Possible errors:
	// - ErrContributionNotFound: If the contribution doesn't exist
	GetContributionByID(ctx context.Context, id string) (*entity.RoomContribution, error)

	// UpdateContribution persists contribution status transitions
	UpdateContribution(ctx context.Context, contribution *entity.RoomContribution) error

	// ListCompletedContributions returns a room's completed contributions,
	// newest first
	ListCompletedContributions(ctx context.Context, roomID string) ([]*entity.RoomContribution, error)

	// CountCompletedContributions returns the number of completed
	// contributions for a room
	CountCompletedContributions(ctx context.Context, roomID string) (int64, error)
}
