// Package router defines how HTTP routes are registered for the
// API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/filmhall/cinema-booking/internal/handler"
)

// RegisterRoutes maps every core operation onto the echo instance.
// The health check lives at the root; everything else is versioned
// under /v1.  No routes require authentication — the service models
// a single cinema for a single operator.
func RegisterRoutes(e *echo.Echo, movies *handler.MovieHandler, screenings *handler.ScreeningHandler, bookings *handler.BookingHandler) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	// Movie catalog: add, list/search, fetch.
	v1.POST("/movies", movies.Create)
	v1.GET("/movies", movies.List)
	v1.GET("/movies/:id", movies.Get)

	// Screening schedule: add, list (optionally by movie), fetch.
	v1.POST("/screenings", screenings.Create)
	v1.GET("/screenings", screenings.List)
	v1.GET("/screenings/:id", screenings.Get)

	// Booking ledger: book, list (filterable), fetch, cancel.
	v1.POST("/bookings", bookings.Create)
	v1.GET("/bookings", bookings.List)
	v1.GET("/bookings/:id", bookings.Get)
	v1.DELETE("/bookings/:id", bookings.Cancel)
}
