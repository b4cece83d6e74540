// Package queue defines the booking lifecycle events exchanged over
// the message broker, the publisher that emits them and the
// background consumer that writes them to the booking log.
package queue

// Queue names for booking lifecycle events.
const (
	BookingCreatedQueue   = "booking.created"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingCreatedEvent is published when seats are successfully
// booked.  It is denormalized so downstream consumers can log or
// notify without querying the service.
type BookingCreatedEvent struct {
	BookingID   string `json:"booking_id"`
	ScreeningID string `json:"screening_id"`
	MovieTitle  string `json:"movie_title"`
	StartsAt    string `json:"starts_at"`
	Customer    string `json:"customer"`
	Seats       int    `json:"seats"`
	CreatedAt   string `json:"created_at"`
}

// BookingCancelledEvent is published when a booking is cancelled
// and its seats returned to the screening.
type BookingCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	ScreeningID string `json:"screening_id"`
	Seats       int    `json:"seats"`
	CancelledAt string `json:"cancelled_at"`
}
