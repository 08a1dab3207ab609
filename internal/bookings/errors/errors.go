package errors

import (
	"errors"

	roomserrors "roombook/internal/rooms/errors"
)

// Validation outcomes, in the order the checks run.
var (
	ErrRoomNotFound = roomserrors.ErrNotFound

	ErrStartInPast = errors.New("booking cannot start in the past")

	ErrInvalidOrder = errors.New("start time must be before end time")

	ErrTooLong = errors.New("booking exceeds the maximum duration")

	ErrOverlap = errors.New("room is already booked for the selected time range")
)

var (
	ErrBookingNotFound = errors.New("booking not found")

	ErrDuplicateID = errors.New("booking ID already exists")
)
