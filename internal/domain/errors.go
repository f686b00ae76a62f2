package domain

import (
	"errors"
	"fmt"
)

// Booking rule kinds. Each one is carried inside one of the error families
// below, so callers can match either the kind (errors.Is) or the family.
var (
	ErrInvalidDateOrder         = errors.New("check-in date must be before check-out date")
	ErrCheckInInPast            = errors.New("check-in date cannot be in the past")
	ErrRoomNotFound             = errors.New("room not found")
	ErrCapacityExceeded         = errors.New("guest count exceeds room capacity")
	ErrInvalidGuestCount        = errors.New("guest count must be at least 1")
	ErrOverlapConflict          = errors.New("room is already booked during the selected dates")
	ErrGenerationExhausted      = errors.New("unable to generate unique booking number")
	ErrPersistenceInconsistency = errors.New("created booking could not be read back")
)

// CapacityExceededError reports the requested guest count against the room limit.
type CapacityExceededError struct {
	Requested int
	Capacity  int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("guest count (%d) exceeds room capacity (%d)", e.Requested, e.Capacity)
}

func (e CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// InternalError marks server-side inconsistencies that are not the caller's fault.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// OverlapConflict is returned by both the validator and the stores' conditional insert.
func OverlapConflict(roomID int64) error {
	return ConflictError{
		Resource: "booking",
		Msg:      fmt.Sprintf("room %d is already booked during the selected dates", roomID),
		Err:      ErrOverlapConflict,
	}
}
