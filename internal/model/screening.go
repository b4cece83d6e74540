package model

import (
	"time"

	"github.com/google/uuid"
)

// Screening is one scheduled showing of a catalog movie.  It tracks
// the total number of sellable seats and how many of them are held
// by active bookings.  BookedSeats is maintained by the booking
// ledger and always equals the sum of seats over ACTIVE bookings
// for this screening.
//
// Fields:
//  ID          – unique identifier assigned by the schedule.
//  MovieID     – catalog movie being shown; must exist when the
//                screening is created.
//  StartsAt    – when the screening begins.
//  TotalSeats  – seat capacity, always positive.
//  BookedSeats – seats currently held by ACTIVE bookings; never
//                negative, never above TotalSeats.
//  CreatedAt   – when the screening was scheduled.
type Screening struct {
	ID          uuid.UUID `json:"id"`
	MovieID     uuid.UUID `json:"movie_id"`
	StartsAt    time.Time `json:"starts_at"`
	TotalSeats  int       `json:"total_seats"`
	BookedSeats int       `json:"booked_seats"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailableSeats reports how many seats can still be booked.
func (s Screening) AvailableSeats() int {
	return s.TotalSeats - s.BookedSeats
}
