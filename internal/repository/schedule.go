package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/filmhall/cinema-booking/internal/model"
)

// Schedule is the in-memory collection of screenings.  Every
// screening references a catalog movie by identifier; the reference
// is validated once, at creation time.  Screenings are never
// removed — cancellations only free seats, they do not unschedule.
type Schedule struct {
	catalog    *Catalog
	screenings []model.Screening
	byID       map[uuid.UUID]int
	now        func() time.Time
}

// NewSchedule returns an empty schedule validating movie references
// against the given catalog.
func NewSchedule(catalog *Catalog) *Schedule {
	return NewScheduleWithClock(catalog, time.Now)
}

// NewScheduleWithClock is NewSchedule with an injectable clock.
// The clock decides what counts as a past start time; tests pin it.
func NewScheduleWithClock(catalog *Catalog, now func() time.Time) *Schedule {
	return &Schedule{
		catalog: catalog,
		byID:    make(map[uuid.UUID]int),
		now:     now,
	}
}

// Add schedules a new screening.  It fails with ErrMovieNotFound
// when the movie is unknown to the catalog and with a validation
// error when the capacity is not positive or the start time lies in
// the past.  Overlapping screenings are allowed — there is no hall
// model, so nothing collides.
func (s *Schedule) Add(movieID uuid.UUID, startsAt time.Time, totalSeats int) (model.Screening, error) {
	if !s.catalog.Has(movieID) {
		return model.Screening{}, ErrMovieNotFound
	}
	if totalSeats < 1 {
		return model.Screening{}, fmt.Errorf("%w: total seats must be positive", ErrValidation)
	}
	if startsAt.Before(s.now()) {
		return model.Screening{}, fmt.Errorf("%w: start time is in the past", ErrValidation)
	}
	scr := model.Screening{
		ID:         uuid.New(),
		MovieID:    movieID,
		StartsAt:   startsAt,
		TotalSeats: totalSeats,
		CreatedAt:  s.now().UTC(),
	}
	s.byID[scr.ID] = len(s.screenings)
	s.screenings = append(s.screenings, scr)
	return scr, nil
}

// Get returns the screening with the given identifier or
// ErrScreeningNotFound.
func (s *Schedule) Get(id uuid.UUID) (model.Screening, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.Screening{}, ErrScreeningNotFound
	}
	return s.screenings[i], nil
}

// List returns screenings ordered by start time ascending, ties
// broken by insertion order.  When movieID is non-nil it filters to
// that movie and fails with ErrMovieNotFound if the movie is
// unknown.  The slice is a fresh snapshot on each call.
func (s *Schedule) List(movieID uuid.UUID) ([]model.Screening, error) {
	if movieID != uuid.Nil && !s.catalog.Has(movieID) {
		return nil, ErrMovieNotFound
	}
	out := make([]model.Screening, 0, len(s.screenings))
	for _, scr := range s.screenings {
		if movieID == uuid.Nil || scr.MovieID == movieID {
			out = append(out, scr)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out, nil
}

// reserve takes seats from a screening.  The ledger calls it after
// its own availability check; the bound is re-checked here so the
// capacity invariant cannot be broken by a misbehaving caller.
func (s *Schedule) reserve(id uuid.UUID, seats int) error {
	i, ok := s.byID[id]
	if !ok {
		return ErrScreeningNotFound
	}
	if seats < 1 || s.screenings[i].BookedSeats+seats > s.screenings[i].TotalSeats {
		return ErrInsufficientSeats
	}
	s.screenings[i].BookedSeats += seats
	return nil
}

// release returns seats to a screening after a cancellation.
func (s *Schedule) release(id uuid.UUID, seats int) error {
	i, ok := s.byID[id]
	if !ok {
		return ErrScreeningNotFound
	}
	s.screenings[i].BookedSeats -= seats
	if s.screenings[i].BookedSeats < 0 {
		// Cannot happen while every release matches a prior reserve.
		s.screenings[i].BookedSeats = 0
	}
	return nil
}
