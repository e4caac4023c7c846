package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInvalidAmount.Error() != "amount must be positive" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrDonationNotFound.Error() != "donation not found" {
		t.Errorf("ErrDonationNotFound has unexpected message: %s", ErrDonationNotFound.Error())
	}
	if ErrContributionBelowMinimum.Error() != "contribution is below the minimum amount" {
		t.Errorf("ErrContributionBelowMinimum has unexpected message: %s", ErrContributionBelowMinimum.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidTreeCount", ErrInvalidTreeCount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidSpecies", ErrInvalidSpecies, 4004},
		{"InvalidDeadline", ErrInvalidDeadline, 4005},
		{"InvalidGoal", ErrInvalidGoal, 4006},
		{"InvalidTitle", ErrInvalidTitle, 4006},
		{"BelowMinimum", ErrContributionBelowMinimum, 4007},
		{"InvalidCallback", ErrInvalidCallback, 4008},
		{"AmountMismatch", ErrAmountMismatch, 4009},
		{"DonationNotPending", ErrDonationNotPending, 4010},
		{"RoomNotActive", ErrRoomNotActive, 4011},
		{"DonationNotFound", ErrDonationNotFound, 4040},
		{"RoomNotFound", ErrRoomNotFound, 4041},
		{"SiteNotFound", ErrSiteNotFound, 4042},
		{"ProfileNotFound", ErrProfileNotFound, 4043},
		{"ContributionNotFound", ErrContributionNotFound, 4044},
		{"NotificationNotFound", ErrNotificationNotFound, 4045},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestCallbackError(t *testing.T) {
	callbackErr := &CallbackError{
		OrderID: "order-1",
		Amount:  "500",
		RefID:   "ref-9",
		Reason:  "amount mismatch",
		Err:     ErrAmountMismatch,
	}

	expectedErrMsg := "payment callback rejected for order order-1 (amount: 500, ref: ref-9): amount mismatch - callback amount does not match the recorded amount"
	if callbackErr.Error() != expectedErrMsg {
		t.Errorf("CallbackError.Error() = %s, want %s", callbackErr.Error(), expectedErrMsg)
	}

	if !errors.Is(callbackErr, ErrAmountMismatch) {
		t.Error("CallbackError should unwrap to its base error")
	}

	fields := callbackErr.LogFields()
	if fields["order_id"] != "order-1" {
		t.Errorf("LogFields order_id = %v, want order-1", fields["order_id"])
	}
	if fields["error_code"] != CodeAmountMismatch {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeAmountMismatch)
	}

	wrapped := NewCallbackError("order-2", "100", "", "missing parameter refId", ErrInvalidCallback)
	if ErrorCode(wrapped) != CodeInvalidCallback {
		t.Errorf("ErrorCode through CallbackError = %d, want %d", ErrorCode(wrapped), CodeInvalidCallback)
	}
}

func TestContributionError(t *testing.T) {
	contribErr := NewContributionError("room-1", "user-7", 5, ErrContributionBelowMinimum)

	expectedErrMsg := "contribution rejected for room room-1 (user: user-7, amount: 5): contribution is below the minimum amount"
	if contribErr.Error() != expectedErrMsg {
		t.Errorf("ContributionError.Error() = %s, want %s", contribErr.Error(), expectedErrMsg)
	}

	if !errors.Is(contribErr, ErrContributionBelowMinimum) {
		t.Error("ContributionError should unwrap to its base error")
	}

	var typed *ContributionError
	if !errors.As(contribErr, &typed) {
		t.Fatal("expected a *ContributionError")
	}
	fields := typed.LogFields()
	if fields["room_id"] != "room-1" {
		t.Errorf("LogFields room_id = %v, want room-1", fields["room_id"])
	}
	if fields["error_code"] != CodeBelowMinimum {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeBelowMinimum)
	}
}

func TestErrorClassifiers(t *testing.T) {
	notFound := []error{
		ErrNotFound, ErrDonationNotFound, ErrRoomNotFound, ErrSiteNotFound,
		ErrProfileNotFound, ErrContributionNotFound, ErrNotificationNotFound,
	}
	for _, err := range notFound {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
		if IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = true, want false", err)
		}
	}

	validation := []error{
		ErrInvalidAmount, ErrInvalidTreeCount, ErrInvalidUserID, ErrInvalidSpecies,
		ErrInvalidDeadline, ErrInvalidGoal, ErrInvalidTitle, ErrContributionBelowMinimum,
	}
	for _, err := range validation {
		if !IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
		if IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = true, want false", err)
		}
	}

	wrapped := NewContributionError("room-1", "user-1", 1, ErrContributionBelowMinimum)
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError should see through ContributionError")
	}
}
