package model

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a single entry in the cinema's catalog.  Apart from the
// title, all attributes are descriptive metadata and optional.  A
// movie is never removed once added; screenings reference it by ID.
//
// Fields:
//  ID             – unique identifier assigned by the catalog.
//  Title          – movie title, never blank.
//  Year           – release year, zero when unknown.
//  Director       – director name, may be empty.
//  Genres         – genre labels in no particular order.
//  Actors         – principal cast.
//  RuntimeMinutes – running time in minutes, zero when unknown.
//  Rating         – aggregate rating on a 0–10 scale.
//  CreatedAt      – when the movie was added to the catalog.
type Movie struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Year           int       `json:"year,omitempty"`
	Director       string    `json:"director,omitempty"`
	Genres         []string  `json:"genres,omitempty"`
	Actors         []string  `json:"actors,omitempty"`
	RuntimeMinutes int       `json:"runtime_minutes,omitempty"`
	Rating         float64   `json:"rating,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
