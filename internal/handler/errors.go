// Package handler implements the HTTP boundary over the cinema
// facade.  Handlers translate core errors into status codes and
// carry no business logic of their own.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmhall/cinema-booking/internal/repository"
)

// writeError maps core errors onto HTTP responses: validation
// failures become 400, unknown identifiers 404, capacity conflicts
// and double cancels 409, everything else 500.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrMovieNotFound),
		errors.Is(err, repository.ErrScreeningNotFound),
		errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientSeats),
		errors.Is(err, repository.ErrBookingCancelled):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
