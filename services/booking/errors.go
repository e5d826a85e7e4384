package booking

import (
	"errors"
	"fmt"
)

// Error codes for user-recoverable booking failures. Anything outside this
// taxonomy is an infrastructure failure and surfaces as a generic 500.
const (
	CodeServiceNotFound    = "serviceNotFound"
	CodeDayClosed          = "dayClosed"
	CodeOutOfBusinessHours = "outOfBusinessHours"
	CodeSlotConflict       = "slotConflict"
	CodeHolidayBlocked     = "holidayBlocked"
	CodeStaleAvailability  = "staleAvailability"
	CodeValidationError    = "validationError"
)

// Error is a user-recoverable booking failure. Suggestions carries up to two
// alternative start times when the failure is slot-related.
type Error struct {
	Code        string
	Message     string
	Suggestions []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a booking error with the given code.
func NewError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewSlotConflict builds a slot-conflict error carrying alternative starts.
func NewSlotConflict(date, start string, suggestions []string) *Error {
	return &Error{
		Code:        CodeSlotConflict,
		Message:     fmt.Sprintf("%s %s is already taken", date, start),
		Suggestions: suggestions,
	}
}

// ErrCode extracts the booking error code from err, or "" if err is not a
// booking error.
func ErrCode(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
