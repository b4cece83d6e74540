// Package cinema exposes the whole of one cinema's state — movie
// catalog, screening schedule and booking ledger — behind a single
// facade.  The Manager owns the three stores exclusively and
// serializes access to them, so concurrent front-ends (the HTTP
// handlers) cannot lose updates to a screening's booked-seat count.
package cinema

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/filmhall/cinema-booking/internal/model"
	"github.com/filmhall/cinema-booking/internal/repository"
)

// Manager is the facade over the catalog, schedule and ledger.  All
// state lives for one process run; nothing is persisted.  Reads take
// the lock shared, mutations take it exclusively — a book/cancel
// pair on the same screening can therefore never interleave.
type Manager struct {
	mu       sync.RWMutex
	catalog  *repository.Catalog
	schedule *repository.Schedule
	ledger   *repository.Ledger
}

// NewManager returns a manager with empty state and the wall clock.
func NewManager() *Manager {
	return NewManagerWithClock(time.Now)
}

// NewManagerWithClock is NewManager with an injectable clock for
// the schedule's past-time policy.
func NewManagerWithClock(now func() time.Time) *Manager {
	catalog := repository.NewCatalog()
	schedule := repository.NewScheduleWithClock(catalog, now)
	return &Manager{
		catalog:  catalog,
		schedule: schedule,
		ledger:   repository.NewLedger(schedule),
	}
}

// AddMovie adds a movie to the catalog.
func (m *Manager) AddMovie(movie model.Movie) (model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.Add(movie)
}

// GetMovie returns a movie by identifier.
func (m *Manager) GetMovie(id uuid.UUID) (model.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.Get(id)
}

// Movies returns the full catalog in insertion order.
func (m *Manager) Movies() []model.Movie {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.All()
}

// SearchMovies returns movies whose title contains the query,
// case-insensitively.
func (m *Manager) SearchMovies(query string) []model.Movie {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.Search(query)
}

// AddScreening schedules a screening of a catalog movie.
func (m *Manager) AddScreening(movieID uuid.UUID, startsAt time.Time, totalSeats int) (model.Screening, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedule.Add(movieID, startsAt, totalSeats)
}

// GetScreening returns a screening by identifier.
func (m *Manager) GetScreening(id uuid.UUID) (model.Screening, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.schedule.Get(id)
}

// ListScreenings returns screenings ordered by start time, filtered
// to one movie when movieID is non-nil.
func (m *Manager) ListScreenings(movieID uuid.UUID) ([]model.Screening, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.schedule.List(movieID)
}

// Book sells seats on a screening and returns the ACTIVE booking.
func (m *Manager) Book(screeningID uuid.UUID, seats int, customer string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ledger.Book(screeningID, seats, customer)
}

// Cancel cancels a booking and frees its seats.
func (m *Manager) Cancel(bookingID uuid.UUID) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ledger.Cancel(bookingID)
}

// GetBooking returns a booking by identifier.
func (m *Manager) GetBooking(id uuid.UUID) (model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ledger.Get(id)
}

// ListBookings returns bookings in insertion order, filtered by
// screening and status when supplied (uuid.Nil and "" mean all).
func (m *Manager) ListBookings(screeningID uuid.UUID, status string) ([]model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ledger.List(screeningID, status)
}
