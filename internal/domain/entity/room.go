package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
)

// RoomStatus defines the lifecycle states of a contribution room
type RoomStatus string

// RoomStatus constants
const (
	RoomActive    RoomStatus = "active"
	RoomCompleted RoomStatus = "completed"
	RoomCancelled RoomStatus = "cancelled"
)

// MinimumRoomGoal is the smallest goal amount a room may be created with, in NPR
const MinimumRoomGoal int64 = 100

// ContributionRoom is a pooled funding goal accepting many small payments
// toward one planting target
type ContributionRoom struct {
	ID            string
	Title         string
	Description   string
	GoalAmount    int64 // Funding goal in whole NPR
	CurrentAmount int64 // Running sum of completed contribution amounts
	TargetTrees   int
	TreeSpecies   string
	SiteID        string
	Status        RoomStatus
	Deadline      time.Time
	CreatedBy     string
	CreatedAt     time.Time
}

// NewContributionRoom creates an active room with basic validation
func NewContributionRoom(
	title string,
	description string,
	goalAmount int64,
	targetTrees int,
	treeSpecies string,
	siteID string,
	deadline time.Time,
	createdBy string,
	timeProvider coreport.TimeProvider,
) (*ContributionRoom, error) {
	if title == "" || description == "" {
		return nil, errs.ErrInvalidTitle
	}
	if goalAmount < MinimumRoomGoal {
		return nil, errs.ErrInvalidGoal
	}
	if targetTrees <= 0 {
		return nil, errs.ErrInvalidTreeCount
	}
	if treeSpecies == "" {
		return nil, errs.ErrInvalidSpecies
	}
	if createdBy == "" {
		return nil, errs.ErrInvalidUserID
	}
	now := timeProvider.Now()
	if !deadline.After(now) {
		return nil, errs.ErrInvalidDeadline
	}

	return &ContributionRoom{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		GoalAmount:  goalAmount,
		TargetTrees: targetTrees,
		TreeSpecies: treeSpecies,
		SiteID:      siteID,
		Status:      RoomActive,
		Deadline:    deadline,
		CreatedBy:   createdBy,
		CreatedAt:   now,
	}, nil
}

// AcceptsContributions reports whether new contributions may target this room
func (r *ContributionRoom) AcceptsContributions() bool {
	return r.Status == RoomActive
}

// ApplyContribution rolls a completed contribution amount into the room's
// running total and transitions the room to completed once the goal is reached.
// Returns true when this contribution closed the goal.
func (r *ContributionRoom) ApplyContribution(amount int64) bool {
	r.CurrentAmount += amount
	if r.Status == RoomActive && r.CurrentAmount >= r.GoalAmount {
		r.Status = RoomCompleted
		return true
	}
	return false
}

// RoomContribution is a micro-donation scoped to a contribution room
type RoomContribution struct {
	ID            string
	RoomID        string
	UserID        string
	Amount        int64 // Contribution amount in whole NPR
	Message       string
	IsAnonymous   bool
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// NewRoomContribution creates a pending contribution, enforcing the configured
// minimum amount before any write is attempted
func NewRoomContribution(
	roomID string,
	userID string,
	amount int64,
	minimumAmount int64,
	message string,
	isAnonymous bool,
	timeProvider coreport.TimeProvider,
) (*RoomContribution, error) {
	if roomID == "" {
		return nil, errs.ErrRoomNotFound
	}
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amount < minimumAmount {
		return nil, errs.ErrContributionBelowMinimum
	}

	return &RoomContribution{
		ID:            uuid.NewString(),
		RoomID:        roomID,
		UserID:        userID,
		Amount:        amount,
		Message:       message,
		IsAnonymous:   isAnonymous,
		PaymentStatus: PaymentPending,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// MarkCompleted transitions a pending contribution to completed
func (c *RoomContribution) MarkCompleted() error {
	if c.PaymentStatus != PaymentPending {
		return errs.ErrDonationNotPending
	}
	c.PaymentStatus = PaymentCompleted
	return nil
}

// MarkFailed transitions a pending contribution to the terminal failed state
func (c *RoomContribution) MarkFailed() error {
	if c.PaymentStatus != PaymentPending {
		return errs.ErrDonationNotPending
	}
	c.PaymentStatus = PaymentFailed
	return nil
}
