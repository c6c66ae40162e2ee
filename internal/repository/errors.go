// Package repository defines error types reused across multiple
// repositories.  These sentinel values let handlers distinguish failure
// scenarios: ErrForbidden means the caller does not own the resource,
// ErrNoSlots means a station's capacity is exhausted, and the NotFound
// sentinels map unknown identifiers to HTTP 404 responses.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned when signup hits the unique email constraint.
var ErrEmailExists = errors.New("email already exists")

// ErrUsernameExists is returned when signup hits the unique username
// constraint.
var ErrUsernameExists = errors.New("username already exists")

// ErrStationNotFound is returned when a station ID does not exist.
var ErrStationNotFound = errors.New("station not found")

// ErrBookingNotFound is returned when a booking ID does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrExpenseNotFound is returned when an expense ID does not exist.
var ErrExpenseNotFound = errors.New("expense not found")

// ErrNoSlots is returned when the conditional slot decrement touches zero
// rows, i.e. the station has no remaining capacity.  Handlers translate
// this into HTTP 409.
var ErrNoSlots = errors.New("no available slots")
