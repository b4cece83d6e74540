package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/filmhall/cinema-booking/internal/model"
)

// Catalog is the in-memory collection of movies.  Movies are kept
// in insertion order; a map indexes them by ID for lookups.  The
// catalog performs no locking of its own — the cinema manager
// serializes access for all stores.
type Catalog struct {
	movies []model.Movie
	byID   map[uuid.UUID]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[uuid.UUID]int)}
}

// Add validates the movie, assigns it a fresh identifier and
// appends it to the catalog.  The title must not be blank; the
// optional metadata follows the catalog's rules: rating between 0
// and 10, release year no earlier than 1888, non-negative runtime.
// Duplicate titles are permitted — identifiers disambiguate.
func (c *Catalog) Add(m model.Movie) (model.Movie, error) {
	if strings.TrimSpace(m.Title) == "" {
		return model.Movie{}, fmt.Errorf("%w: title must not be blank", ErrValidation)
	}
	if m.Rating < 0 || m.Rating > 10 {
		return model.Movie{}, fmt.Errorf("%w: rating must be between 0 and 10", ErrValidation)
	}
	if m.Year != 0 && m.Year < 1888 {
		return model.Movie{}, fmt.Errorf("%w: release year must be 1888 or later", ErrValidation)
	}
	if m.RuntimeMinutes < 0 {
		return model.Movie{}, fmt.Errorf("%w: runtime must not be negative", ErrValidation)
	}
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()
	c.byID[m.ID] = len(c.movies)
	c.movies = append(c.movies, m)
	return m, nil
}

// Get returns the movie with the given identifier or
// ErrMovieNotFound.
func (c *Catalog) Get(id uuid.UUID) (model.Movie, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Movie{}, ErrMovieNotFound
	}
	return c.movies[i], nil
}

// Has reports whether a movie with the given identifier exists.
// The schedule uses it to validate screening references.
func (c *Catalog) Has(id uuid.UUID) bool {
	_, ok := c.byID[id]
	return ok
}

// Search returns the movies whose title contains the query,
// compared case-insensitively, in catalog insertion order.  An
// empty query matches every movie.  No match is an empty result,
// never an error.
func (c *Catalog) Search(query string) []model.Movie {
	q := strings.ToLower(query)
	out := make([]model.Movie, 0)
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}

// All returns every movie in insertion order.  The slice is a fresh
// snapshot on each call.
func (c *Catalog) All() []model.Movie {
	out := make([]model.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}
