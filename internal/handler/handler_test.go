package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmhall/cinema-booking/internal/cinema"
	"github.com/filmhall/cinema-booking/internal/model"
)

// request runs a handler against a synthetic request and returns the
// recorder.  pathParams come in name/value pairs.
func request(t *testing.T, h echo.HandlerFunc, method, target, body string, pathParams ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(pathParams); i += 2 {
		names = append(names, pathParams[i])
		values = append(values, pathParams[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, h(c))
	return rec
}

func TestMovieCreateAndSearch(t *testing.T) {
	m := cinema.NewManager()
	h := NewMovieHandler(m)

	rec := request(t, h.Create, http.MethodPost, "/v1/movies",
		`{"title":"Inception","year":2010,"director":"Christopher Nolan","rating":8.8}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Inception", created.Title)
	assert.NotEqual(t, uuid.Nil, created.ID)

	rec = request(t, h.List, http.MethodGet, "/v1/movies?q=INCEP", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var found []model.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	rec = request(t, h.List, http.MethodGet, "/v1/movies?q=matrix", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestMovieCreateBlankTitle(t *testing.T) {
	h := NewMovieHandler(cinema.NewManager())

	rec := request(t, h.Create, http.MethodPost, "/v1/movies", `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieGetUnknown(t *testing.T) {
	h := NewMovieHandler(cinema.NewManager())

	rec := request(t, h.Get, http.MethodGet, "/v1/movies/x", "", "id", uuid.New().String())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(t, h.Get, http.MethodGet, "/v1/movies/x", "", "id", "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScreeningCreateErrors(t *testing.T) {
	m := cinema.NewManager()
	movie, err := m.AddMovie(model.Movie{Title: "Dune"})
	require.NoError(t, err)
	h := NewScreeningHandler(m)

	future := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	// Unknown movie.
	rec := request(t, h.Create, http.MethodPost, "/v1/screenings",
		fmt.Sprintf(`{"movie_id":%q,"starts_at":%q,"total_seats":50}`, uuid.New(), future))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Non-positive capacity.
	rec = request(t, h.Create, http.MethodPost, "/v1/screenings",
		fmt.Sprintf(`{"movie_id":%q,"starts_at":%q,"total_seats":0}`, movie.ID, future))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Past start time.
	rec = request(t, h.Create, http.MethodPost, "/v1/screenings",
		fmt.Sprintf(`{"movie_id":%q,"starts_at":"2020-01-01T20:00:00Z","total_seats":50}`, movie.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// And the happy path.
	rec = request(t, h.Create, http.MethodPost, "/v1/screenings",
		fmt.Sprintf(`{"movie_id":%q,"starts_at":%q,"total_seats":50}`, movie.ID, future))
	require.Equal(t, http.StatusCreated, rec.Code)
	var scr model.Screening
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scr))
	assert.Equal(t, 50, scr.TotalSeats)
	assert.Equal(t, 0, scr.BookedSeats)
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	m := cinema.NewManager()
	movie, err := m.AddMovie(model.Movie{Title: "Dune"})
	require.NoError(t, err)
	scr, err := m.AddScreening(movie.ID, time.Now().Add(2*time.Hour), 3)
	require.NoError(t, err)
	h := NewBookingHandler(m, nil)

	// Book two of three seats.
	rec := request(t, h.Create, http.MethodPost, "/v1/bookings",
		fmt.Sprintf(`{"screening_id":%q,"seats":2,"customer":"Alice"}`, scr.ID))
	require.Equal(t, http.StatusCreated, rec.Code)
	var alice model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alice))
	assert.Equal(t, model.BookingActive, alice.Status)

	// Two more seats do not fit.
	rec = request(t, h.Create, http.MethodPost, "/v1/bookings",
		fmt.Sprintf(`{"screening_id":%q,"seats":2,"customer":"Bob"}`, scr.ID))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown screening.
	rec = request(t, h.Create, http.MethodPost, "/v1/bookings",
		fmt.Sprintf(`{"screening_id":%q,"seats":1,"customer":"Bob"}`, uuid.New()))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Cancel frees the seats; a second cancel is a conflict.
	rec = request(t, h.Cancel, http.MethodDelete, "/v1/bookings/x", "", "id", alice.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	var cancelled model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cancelled))
	assert.Equal(t, model.BookingCancelled, cancelled.Status)

	rec = request(t, h.Cancel, http.MethodDelete, "/v1/bookings/x", "", "id", alice.ID.String())
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Bob can now take the freed seats.
	rec = request(t, h.Create, http.MethodPost, "/v1/bookings",
		fmt.Sprintf(`{"screening_id":%q,"seats":2,"customer":"Bob"}`, scr.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Status filter is case-insensitive at the boundary.
	rec = request(t, h.List, http.MethodGet, "/v1/bookings?status=active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var active []model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "Bob", active[0].Customer)

	rec = request(t, h.List, http.MethodGet, "/v1/bookings?status=pending", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := request(t, Health, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
