package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/filmhall/cinema-booking/internal/cinema"
	"github.com/filmhall/cinema-booking/internal/model"
)

// MovieHandler exposes the movie catalog over HTTP.
type MovieHandler struct {
	Cinema *cinema.Manager
}

// NewMovieHandler constructs a MovieHandler.  The manager must be
// non-nil.
func NewMovieHandler(m *cinema.Manager) *MovieHandler {
	if m == nil {
		panic("nil manager passed to NewMovieHandler")
	}
	return &MovieHandler{Cinema: m}
}

// Create handles POST /v1/movies.  The body carries the title and
// optional metadata; the catalog validates and assigns the ID.
func (h *MovieHandler) Create(c echo.Context) error {
	var body struct {
		Title          string   `json:"title"`
		Year           int      `json:"year"`
		Director       string   `json:"director"`
		Genres         []string `json:"genres"`
		Actors         []string `json:"actors"`
		RuntimeMinutes int      `json:"runtime_minutes"`
		Rating         float64  `json:"rating"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	movie, err := h.Cinema.AddMovie(model.Movie{
		Title:          body.Title,
		Year:           body.Year,
		Director:       body.Director,
		Genres:         body.Genres,
		Actors:         body.Actors,
		RuntimeMinutes: body.RuntimeMinutes,
		Rating:         body.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, movie)
}

// List handles GET /v1/movies.  With a ?q= parameter it performs a
// case-insensitive substring search over titles; without one it
// returns the whole catalog.  No match is an empty array, not an
// error.
func (h *MovieHandler) List(c echo.Context) error {
	if q := c.QueryParam("q"); q != "" {
		return c.JSON(http.StatusOK, h.Cinema.SearchMovies(q))
	}
	return c.JSON(http.StatusOK, h.Cinema.Movies())
}

// Get handles GET /v1/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	movie, err := h.Cinema.GetMovie(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, movie)
}
