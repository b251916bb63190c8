package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// respondError maps domain errors onto HTTP statuses. Every handler funnels
// service errors through here so the mapping stays in one place.
//
// Not-found covers both "never existed" and "exists but is not yours": owner
// scoped deletes filter on the owner id, so a foreign resource is
// indistinguishable from a missing one.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrEmailTaken):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrExternalSourceNotSupported):
		status = http.StatusNotImplemented
		msg = err.Error()
	}

	return c.JSON(status, map[string]string{"error": msg})
}
