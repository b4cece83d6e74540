package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/filmhall/cinema-booking/internal/cinema"
	"github.com/filmhall/cinema-booking/internal/queue"
)

// BookingHandler exposes the booking ledger over HTTP.  When a
// Publisher is configured, successful bookings and cancellations are
// also announced on the message broker; publish failures are
// ignored so the broker can never fail a request.
type BookingHandler struct {
	Cinema    *cinema.Manager
	Publisher *queue.Publisher // nil disables event publishing
}

// NewBookingHandler constructs a BookingHandler.  The manager must
// be non-nil; the publisher may be nil.
func NewBookingHandler(m *cinema.Manager, p *queue.Publisher) *BookingHandler {
	if m == nil {
		panic("nil manager passed to NewBookingHandler")
	}
	return &BookingHandler{Cinema: m, Publisher: p}
}

// Create handles POST /v1/bookings.  The availability check and the
// booking creation happen as one step inside the ledger, so two
// concurrent requests can never oversell a screening.
func (h *BookingHandler) Create(c echo.Context) error {
	var body struct {
		ScreeningID string `json:"screening_id"`
		Seats       int    `json:"seats"`
		Customer    string `json:"customer"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	screeningID, err := uuid.Parse(body.ScreeningID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screening id"})
	}
	booking, err := h.Cinema.Book(screeningID, body.Seats, strings.TrimSpace(body.Customer))
	if err != nil {
		return writeError(c, err)
	}

	if h.Publisher != nil {
		event := queue.BookingCreatedEvent{
			BookingID:   booking.ID.String(),
			ScreeningID: booking.ScreeningID.String(),
			Customer:    booking.Customer,
			Seats:       booking.Seats,
			CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
		}
		if scr, err := h.Cinema.GetScreening(booking.ScreeningID); err == nil {
			event.StartsAt = scr.StartsAt.Format(time.RFC3339)
			if movie, err := h.Cinema.GetMovie(scr.MovieID); err == nil {
				event.MovieTitle = movie.Title
			}
		}
		_ = h.Publisher.PublishBookingCreated(c.Request().Context(), event)
	}
	return c.JSON(http.StatusCreated, booking)
}

// Cancel handles DELETE /v1/bookings/:id.  Cancelling returns the
// booking's seats to the screening; cancelling twice is a conflict.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	booking, err := h.Cinema.Cancel(id)
	if err != nil {
		return writeError(c, err)
	}

	if h.Publisher != nil {
		cancelledAt := ""
		if booking.CancelledAt != nil {
			cancelledAt = booking.CancelledAt.Format(time.RFC3339)
		}
		_ = h.Publisher.PublishBookingCancelled(c.Request().Context(), queue.BookingCancelledEvent{
			BookingID:   booking.ID.String(),
			ScreeningID: booking.ScreeningID.String(),
			Seats:       booking.Seats,
			CancelledAt: cancelledAt,
		})
	}
	return c.JSON(http.StatusOK, booking)
}

// List handles GET /v1/bookings with optional ?screening_id= and
// ?status= filters.
func (h *BookingHandler) List(c echo.Context) error {
	screeningID := uuid.Nil
	if raw := c.QueryParam("screening_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screening id"})
		}
		screeningID = id
	}
	status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	bookings, err := h.Cinema.ListBookings(screeningID, status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	booking, err := h.Cinema.GetBooking(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}
