package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

// BookingHandler serves booking operations. Every route is scoped to the
// session identity; there is no way to pass another user's id.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// createBookingRequest leaves stay_days unvalidated at the transport layer:
// the service checks hotel existence before stay length, and a schema-level
// gt=0 would reorder those failures.
type createBookingRequest struct {
	HotelID     string `json:"hotel_id"      validate:"required"`
	HotelSource string `json:"hotel_source"  validate:"required,oneof=local external"`
	CheckInDate string `json:"check_in_date" validate:"required"`
	StayDays    int    `json:"stay_days"`
}

// Create books a stay for the authenticated user.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      501   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		UserID:      userID,
		HotelID:     req.HotelID,
		HotelSource: req.HotelSource,
		CheckInDate: req.CheckInDate,
		StayDays:    req.StayDays,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, booking)
}

// ListMine returns the authenticated user's bookings, newest first.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  map[string]string
// @Router       /bookings/my [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// Delete cancels one of the authenticated user's bookings.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "booking deleted"})
}
