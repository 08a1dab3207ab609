package errors

import "errors"

var (
	ErrNotFound = errors.New("room does not exist")

	ErrInvalidSeed = errors.New("invalid room seed")

	ErrDuplicateID = errors.New("duplicate room ID")
)
