package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller lacks the permission required for the operation.
var ErrForbidden = errors.New("access denied")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrMonthClosed indicates a timesheet write against a month that already has a payment.
var ErrMonthClosed = errors.New("month is closed")

// ErrPaymentExists indicates a second closure attempt for the same (user, year, month).
var ErrPaymentExists = errors.New("payment already exists for this period")

// MalformedTimeError reports a time-of-day string that could not be parsed as HH:MM.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: expected HH:MM", e.Value)
}

func (e *MalformedTimeError) Unwrap() error { return ErrValidation }

// InvalidTimeRangeError reports an hour outside 0-23 or a minute outside 0-59.
type InvalidTimeRangeError struct {
	Index  int
	Value  string
	Hour   int
	Minute int
}

func (e *InvalidTimeRangeError) Error() string {
	return fmt.Sprintf("period %d: time %q out of range (hour %d, minute %d)", e.Index, e.Value, e.Hour, e.Minute)
}

func (e *InvalidTimeRangeError) Unwrap() error { return ErrValidation }

// InvertedPeriodError reports a period whose end precedes its start.
type InvertedPeriodError struct {
	Index int
	Start string
	End   string
}

func (e *InvertedPeriodError) Error() string {
	return fmt.Sprintf("period %d: end %q before start %q", e.Index, e.End, e.Start)
}

func (e *InvertedPeriodError) Unwrap() error { return ErrValidation }

// OverlappingPeriodError reports two periods of the same day that intersect.
type OverlappingPeriodError struct {
	FirstIndex  int
	SecondIndex int
	FirstEnd    string
	SecondStart string
}

func (e *OverlappingPeriodError) Error() string {
	return fmt.Sprintf("periods %d and %d overlap: end %q is after start %q", e.FirstIndex, e.SecondIndex, e.FirstEnd, e.SecondStart)
}

func (e *OverlappingPeriodError) Unwrap() error { return ErrValidation }
