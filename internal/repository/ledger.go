package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/filmhall/cinema-booking/internal/model"
)

// Ledger is the in-memory collection of bookings and the state
// machine that sells and frees seats.  Every mutation is
// all-or-nothing: the availability check and the commit happen as
// one step, and a failed operation leaves both the ledger and the
// schedule exactly as they were.
type Ledger struct {
	schedule *Schedule
	bookings []model.Booking
	byID     map[uuid.UUID]int
}

// NewLedger returns an empty ledger selling seats from the given
// schedule.
func NewLedger(schedule *Schedule) *Ledger {
	return &Ledger{
		schedule: schedule,
		byID:     make(map[uuid.UUID]int),
	}
}

// Book creates an ACTIVE booking for the screening.  It fails with
// ErrScreeningNotFound when the screening is unknown and with
// ErrInsufficientSeats when seats is below one or exceeds the
// screening's remaining capacity.  On success the screening's
// booked-seat count is incremented by exactly seats.
func (l *Ledger) Book(screeningID uuid.UUID, seats int, customer string) (model.Booking, error) {
	scr, err := l.schedule.Get(screeningID)
	if err != nil {
		return model.Booking{}, err
	}
	if seats < 1 {
		return model.Booking{}, fmt.Errorf("%w: at least one seat must be requested", ErrInsufficientSeats)
	}
	if scr.BookedSeats+seats > scr.TotalSeats {
		return model.Booking{}, fmt.Errorf("%w: %d requested, %d left", ErrInsufficientSeats, seats, scr.AvailableSeats())
	}
	if err := l.schedule.reserve(screeningID, seats); err != nil {
		return model.Booking{}, err
	}
	b := model.Booking{
		ID:          uuid.New(),
		ScreeningID: screeningID,
		Customer:    customer,
		Seats:       seats,
		Status:      model.BookingActive,
		CreatedAt:   time.Now().UTC(),
	}
	l.byID[b.ID] = len(l.bookings)
	l.bookings = append(l.bookings, b)
	return b, nil
}

// Cancel moves an ACTIVE booking to CANCELLED and returns its seats
// to the screening — exactly the seats the booking held, no partial
// refunds.  It fails with ErrBookingNotFound for an unknown
// identifier and with ErrBookingCancelled when the booking is
// already CANCELLED.  The record itself stays in the ledger.
func (l *Ledger) Cancel(bookingID uuid.UUID) (model.Booking, error) {
	i, ok := l.byID[bookingID]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	if l.bookings[i].Status == model.BookingCancelled {
		return model.Booking{}, ErrBookingCancelled
	}
	if err := l.schedule.release(l.bookings[i].ScreeningID, l.bookings[i].Seats); err != nil {
		return model.Booking{}, err
	}
	now := time.Now().UTC()
	l.bookings[i].Status = model.BookingCancelled
	l.bookings[i].CancelledAt = &now
	return l.bookings[i], nil
}

// Get returns the booking with the given identifier or
// ErrBookingNotFound.
func (l *Ledger) Get(id uuid.UUID) (model.Booking, error) {
	i, ok := l.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return l.bookings[i], nil
}

// List returns bookings in insertion order, optionally filtered by
// screening and by status.  uuid.Nil and the empty string mean no
// filter.  An unknown status string is a validation error; an
// unknown screening simply yields an empty result, since the filter
// is a predicate rather than a reference.
func (l *Ledger) List(screeningID uuid.UUID, status string) ([]model.Booking, error) {
	if status != "" && status != model.BookingActive && status != model.BookingCancelled {
		return nil, fmt.Errorf("%w: unknown booking status %q", ErrValidation, status)
	}
	out := make([]model.Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		if screeningID != uuid.Nil && b.ScreeningID != screeningID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// BookedSeatSum recomputes the seat total over ACTIVE bookings for
// a screening.  The schedule's cached booked-seat count must always
// equal this sum; tests assert the equality after every operation.
func (l *Ledger) BookedSeatSum(screeningID uuid.UUID) int {
	sum := 0
	for _, b := range l.bookings {
		if b.ScreeningID == screeningID && b.Status == model.BookingActive {
			sum += b.Seats
		}
	}
	return sum
}
