package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking status values.  A booking starts ACTIVE and may move to
// CANCELLED exactly once; CANCELLED is terminal and there is no
// re-activation path.
const (
	BookingActive    = "ACTIVE"
	BookingCancelled = "CANCELLED"
)

// Booking records seats sold against a screening.  Cancelled
// bookings are kept in the ledger for listing; their seats are
// returned to the screening when the cancellation happens.
//
// Fields:
//  ID          – unique identifier assigned by the ledger.
//  ScreeningID – screening the seats were booked for.
//  Customer    – free-form label identifying who booked.
//  Seats       – number of seats held, always positive.
//  Status      – ACTIVE or CANCELLED.
//  CreatedAt   – when the booking was made.
//  CancelledAt – when the booking was cancelled, nil while ACTIVE.
type Booking struct {
	ID          uuid.UUID  `json:"id"`
	ScreeningID uuid.UUID  `json:"screening_id"`
	Customer    string     `json:"customer"`
	Seats       int        `json:"seats"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
