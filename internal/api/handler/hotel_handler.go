package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

// HotelHandler serves the local hotel catalogue. Reads are public; writes
// are gated to operators by the router.
type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

type hotelRequest struct {
	Name        string  `json:"name"     validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Price       float64 `json:"price"    validate:"required,gt=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// List returns all catalogue hotels.
//
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {array}   domain.Hotel
// @Failure      500  {object}  map[string]string
// @Router       /hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	hotels, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// Get returns a single hotel by id.
//
// @Summary      Get a hotel
// @Tags         hotels
// @Produce      json
// @Param        id   path      string  true  "Hotel id"
// @Success      200  {object}  domain.Hotel
// @Failure      404  {object}  map[string]string
// @Router       /hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	hotel, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// Create adds a hotel to the catalogue.
//
// @Summary      Create a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hotelRequest  true  "Hotel details"
// @Success      201   {object}  domain.Hotel
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	hotel, err := h.service.Create(c.Request().Context(), hotelInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, hotel)
}

// Update replaces the mutable fields of a hotel.
//
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Hotel id"
// @Param        body  body      hotelRequest  true  "Hotel details"
// @Success      200   {object}  domain.Hotel
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /hotels/{id} [put]
func (h *HotelHandler) Update(c echo.Context) error {
	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	hotel, err := h.service.Update(c.Request().Context(), c.Param("id"), hotelInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// Delete removes a hotel from the catalogue.
//
// @Summary      Delete a hotel
// @Tags         hotels
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Hotel id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /hotels/{id} [delete]
func (h *HotelHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func hotelInput(req hotelRequest) ports.HotelInput {
	return ports.HotelInput{
		Name:        req.Name,
		Location:    req.Location,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}
