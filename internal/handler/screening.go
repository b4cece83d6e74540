package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/filmhall/cinema-booking/internal/cinema"
)

// ScreeningHandler exposes the screening schedule over HTTP.
type ScreeningHandler struct {
	Cinema *cinema.Manager
}

// NewScreeningHandler constructs a ScreeningHandler.  The manager
// must be non-nil.
func NewScreeningHandler(m *cinema.Manager) *ScreeningHandler {
	if m == nil {
		panic("nil manager passed to NewScreeningHandler")
	}
	return &ScreeningHandler{Cinema: m}
}

// Create handles POST /v1/screenings.  The movie must already exist
// in the catalog, the capacity must be positive and the start time
// (RFC 3339) must not lie in the past.
func (h *ScreeningHandler) Create(c echo.Context) error {
	var body struct {
		MovieID    string    `json:"movie_id"`
		StartsAt   time.Time `json:"starts_at"`
		TotalSeats int       `json:"total_seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	movieID, err := uuid.Parse(body.MovieID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	scr, err := h.Cinema.AddScreening(movieID, body.StartsAt, body.TotalSeats)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, scr)
}

// List handles GET /v1/screenings, ordered by start time.  The
// optional ?movie_id= parameter filters to one movie and yields 404
// when that movie is unknown.
func (h *ScreeningHandler) List(c echo.Context) error {
	movieID := uuid.Nil
	if raw := c.QueryParam("movie_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
		}
		movieID = id
	}
	screenings, err := h.Cinema.ListScreenings(movieID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, screenings)
}

// Get handles GET /v1/screenings/:id.
func (h *ScreeningHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screening id"})
	}
	scr, err := h.Cinema.GetScreening(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, scr)
}
