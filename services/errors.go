package services

import "errors"

// ErrNotFound is returned when a room, reservation, service request or
// employee lookup by key yields nothing. Controllers answer 404.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a key is already taken. Controllers answer 409.
var ErrDuplicate = errors.New("duplicate key")

// ErrInvalidInput is returned for unknown variants, statuses or missing
// required attributes. Controllers answer 400.
var ErrInvalidInput = errors.New("invalid input")
