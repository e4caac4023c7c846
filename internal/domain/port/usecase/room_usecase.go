package usecase

import (
	"context"
	"time"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
)

// CreateRoomRequest carries everything needed to open a contribution room
type CreateRoomRequest struct {
	Title       string
	Description string
	GoalAmount  int64
	TargetTrees int
	TreeSpecies string
	SiteID      string
	Deadline    time.Time
	CreatedBy   string
}

// ContributeRequest carries one pooled micro-donation
type ContributeRequest struct {
	RoomID      string
	UserID      string
	Amount      int64
	Message     string
	IsAnonymous bool
}

// RoomDetail is the full view of one room: progress plus its completed
// contributions
type RoomDetail struct {
	Room          *entity.ContributionRoom
	Progress      entity.RoomProgress
	Contributions []*entity.RoomContribution
}

// RoomUseCase owns the contribution room write path and the per-room reads
type RoomUseCase interface {
	// CreateRoom validates and persists a new active room
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*entity.ContributionRoom, error)

	// ListRooms returns the derived progress of active and completed rooms
	ListRooms(ctx context.Context) ([]entity.RoomProgress, error)

	// GetRoomDetail returns one room with progress and completed contributions
	GetRoomDetail(ctx context.Context, roomID string) (*RoomDetail, error)

	// Contribute validates the contribution against the room state and the
	// configured minimum, persists it pending and returns the gateway form
	Contribute(ctx context.Context, req ContributeRequest) (*InitiatedPayment, error)

	// FinalizeContribution handles the gateway success callback for a room
	// contribution: marks it completed, rolls the amount into the room total
	// and closes the room when the goal is reached, all in one transaction
	FinalizeContribution(ctx context.Context, cb payment.Callback) (*entity.RoomContribution, error)

	// FailContribution handles the gateway failure callback
	FailContribution(ctx context.Context, contributionID string) error
}
