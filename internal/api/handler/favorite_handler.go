package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

// FavoriteHandler manages the caller's favorite hotels. The owner is always
// the session identity, never a path parameter.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

type addFavoriteRequest struct {
	HotelID string `json:"hotel_id" validate:"required"`
}

// List returns the caller's favorite hotels, resolved to full documents.
//
// @Summary      List my favorite hotels
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Hotel
// @Failure      401  {object}  map[string]string
// @Router       /users/me/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	hotels, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// Add marks a hotel as a favorite. Adding an existing favorite is a no-op.
//
// @Summary      Add a favorite hotel
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  addFavoriteRequest  true  "Hotel to favorite"
// @Success      200  {array}   domain.Hotel
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me/favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	hotels, err := h.service.Add(c.Request().Context(), userID, req.HotelID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// Remove unmarks a favorite. Removing an absent favorite is a no-op.
//
// @Summary      Remove a favorite hotel
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        hotelId  path  string  true  "Hotel id"
// @Success      200  {array}   domain.Hotel
// @Failure      401  {object}  map[string]string
// @Router       /users/me/favorites/{hotelId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	hotels, err := h.service.Remove(c.Request().Context(), userID, c.Param("hotelId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotels)
}
