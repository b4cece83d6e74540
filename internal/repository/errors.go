// Package repository holds the in-memory stores that make up the
// cinema's state: the movie catalog, the screening schedule and the
// booking ledger.  The sentinel errors defined here are shared by
// all three stores so that higher layers such as HTTP handlers can
// distinguish failure scenarios with errors.Is.  For example,
// ErrInsufficientSeats signals that a booking would oversell a
// screening, while ErrValidation wraps any malformed-input error.
package repository

import "errors"

// ErrValidation is the base error for malformed input: a blank
// title, a non-positive capacity or seat count, a start time in the
// past.  Concrete failures wrap it with detail, so callers match it
// with errors.Is.  Handlers translate it into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// ErrMovieNotFound is returned when a movie identifier is unknown
// to the catalog.  Handlers translate it into an HTTP 404 response.
var ErrMovieNotFound = errors.New("movie not found")

// ErrScreeningNotFound is returned when a screening identifier is
// unknown to the schedule.
var ErrScreeningNotFound = errors.New("screening not found")

// ErrBookingNotFound is returned when a booking identifier is
// unknown to the ledger.
var ErrBookingNotFound = errors.New("booking not found")

// ErrInsufficientSeats is returned when a booking requests fewer
// than one seat or more seats than the screening has left.  The
// screening is left untouched.  Handlers should translate this into
// an HTTP 409 response.
var ErrInsufficientSeats = errors.New("insufficient seats")

// ErrBookingCancelled is returned when cancelling a booking that is
// already CANCELLED.  The double cancel is a hard error rather than
// a no-op so that callers notice stale booking identifiers.
var ErrBookingCancelled = errors.New("booking already cancelled")
