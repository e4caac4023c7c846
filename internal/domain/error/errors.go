package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidTreeCount    = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidSpecies      = 4004
	CodeInvalidDeadline     = 4005
	CodeInvalidGoal         = 4006
	CodeBelowMinimum        = 4007
	CodeInvalidCallback     = 4008
	CodeAmountMismatch      = 4009
	CodeDonationNotPending  = 4010
	CodeRoomNotActive       = 4011
	CodeDonationNotFound    = 4040
	CodeRoomNotFound        = 4041
	CodeSiteNotFound        = 4042
	CodeProfileNotFound     = 4043
	CodeContributionMissing = 4044
	CodeNotificationMissing = 4045

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when a donation or contribution amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidTreeCount is returned when the tree count is not positive
	ErrInvalidTreeCount = errors.New("tree count must be positive")

	// ErrInvalidUserID is returned when the payer identifier is missing
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidSpecies is returned when the tree species is missing
	ErrInvalidSpecies = errors.New("tree species cannot be empty")

	// ErrInvalidDeadline is returned when a room deadline is missing or in the past
	ErrInvalidDeadline = errors.New("deadline must be in the future")

	// ErrInvalidGoal is returned when a room goal amount is below the allowed minimum
	ErrInvalidGoal = errors.New("goal amount is below the allowed minimum")

	// ErrInvalidTitle is returned when a room title or description is missing
	ErrInvalidTitle = errors.New("title and description are required")

	// ErrContributionBelowMinimum is returned when a room contribution is under the configured floor
	ErrContributionBelowMinimum = errors.New("contribution is below the minimum amount")

	// ErrDonationNotFound is returned when the requested donation doesn't exist
	ErrDonationNotFound = errors.New("donation not found")

	// ErrDonationNotPending is returned when a gateway callback targets a donation
	// that is not awaiting payment
	ErrDonationNotPending = errors.New("donation is not pending payment")

	// ErrAmountMismatch is returned when the gateway-reported amount differs from the stored one
	ErrAmountMismatch = errors.New("callback amount does not match the recorded amount")

	// ErrInvalidCallback is returned when gateway callback parameters are missing or malformed
	ErrInvalidCallback = errors.New("invalid payment callback parameters")

	// ErrRoomNotFound is returned when the requested contribution room doesn't exist
	ErrRoomNotFound = errors.New("contribution room not found")

	// ErrRoomNotActive is returned when a contribution targets a completed or cancelled room
	ErrRoomNotActive = errors.New("contribution room is not accepting contributions")

	// ErrContributionNotFound is returned when the requested room contribution doesn't exist
	ErrContributionNotFound = errors.New("room contribution not found")

	// ErrSiteNotFound is returned when the requested planting site doesn't exist
	ErrSiteNotFound = errors.New("planting site not found")

	// ErrProfileNotFound is returned when the requested profile doesn't exist
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNotificationNotFound is returned when the requested site notification doesn't exist
	ErrNotificationNotFound = errors.New("site notification not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateRecord is returned when a unique constraint is violated
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidTreeCount):
		return CodeInvalidTreeCount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidSpecies):
		return CodeInvalidSpecies
	case errors.Is(err, ErrInvalidDeadline):
		return CodeInvalidDeadline
	case errors.Is(err, ErrInvalidGoal), errors.Is(err, ErrInvalidTitle):
		return CodeInvalidGoal
	case errors.Is(err, ErrContributionBelowMinimum):
		return CodeBelowMinimum
	case errors.Is(err, ErrInvalidCallback):
		return CodeInvalidCallback
	case errors.Is(err, ErrAmountMismatch):
		return CodeAmountMismatch
	case errors.Is(err, ErrDonationNotPending):
		return CodeDonationNotPending
	case errors.Is(err, ErrRoomNotActive):
		return CodeRoomNotActive
	case errors.Is(err, ErrDonationNotFound):
		return CodeDonationNotFound
	case errors.Is(err, ErrRoomNotFound):
		return CodeRoomNotFound
	case errors.Is(err, ErrSiteNotFound):
		return CodeSiteNotFound
	case errors.Is(err, ErrProfileNotFound):
		return CodeProfileNotFound
	case errors.Is(err, ErrContributionNotFound):
		return CodeContributionMissing
	case errors.Is(err, ErrNotificationNotFound):
		return CodeNotificationMissing
	default:
		return CodeInternalServer
	}
}

// CallbackError carries the gateway parameters that failed validation so the
// failure can be logged and surfaced with context.
type CallbackError struct {
	OrderID string
	Amount  string
	RefID   string
	Reason  string
	Err     error
}

// Error implements the error interface for CallbackError
func (e *CallbackError) Error() string {
	return fmt.Sprintf("payment callback rejected for order %s (amount: %s, ref: %s): %s - %v",
		e.OrderID, e.Amount, e.RefID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *CallbackError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CallbackError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "callback_error",
		"order_id":   e.OrderID,
		"amount":     e.Amount,
		"ref_id":     e.RefID,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewCallbackError creates a detailed payment callback error
func NewCallbackError(orderID, amount, refID, reason string, err error) error {
	return &CallbackError{
		OrderID: orderID,
		Amount:  amount,
		RefID:   refID,
		Reason:  reason,
		Err:     err,
	}
}

// ContributionError describes a rejected room contribution attempt.
type ContributionError struct {
	RoomID string
	UserID string
	Amount int64
	Err    error
}

// Error implements the error interface for ContributionError
func (e *ContributionError) Error() string {
	return fmt.Sprintf("contribution rejected for room %s (user: %s, amount: %d): %v",
		e.RoomID, e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *ContributionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ContributionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "contribution_error",
		"room_id":    e.RoomID,
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewContributionError creates a detailed contribution error
func NewContributionError(roomID, userID string, amount int64, err error) error {
	return &ContributionError{
		RoomID: roomID,
		UserID: userID,
		Amount: amount,
		Err:    err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDonationNotFound) ||
		errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrSiteNotFound) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrContributionNotFound) ||
		errors.Is(err, ErrNotificationNotFound)
}

// IsValidationError checks if the error was raised before any write was attempted
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidTreeCount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidSpecies) ||
		errors.Is(err, ErrInvalidDeadline) ||
		errors.Is(err, ErrInvalidGoal) ||
		errors.Is(err, ErrInvalidTitle) ||
		errors.Is(err, ErrContributionBelowMinimum)
}
