package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	HotelID     string `json:"hotel_id"     validate:"required"`
	HotelSource string `json:"hotel_source" validate:"required,oneof=local external"`
	Comment     string `json:"comment"      validate:"required"`
	Rating      int    `json:"rating"       validate:"required"`
}

// Create posts a review for a hotel.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		UserID:      userID,
		HotelID:     req.HotelID,
		HotelSource: req.HotelSource,
		Comment:     req.Comment,
		Rating:      req.Rating,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

// ListForHotel returns a handler serving the public per-hotel listing for
// one source. The source is fixed per route, so local and external hotels
// get separate paths and the client never sends a source discriminator.
func (h *ReviewHandler) ListForHotel(source domain.HotelSource) echo.HandlerFunc {
	return func(c echo.Context) error {
		reviews, err := h.service.ListForHotel(c.Request().Context(), c.Param("hotelId"), source)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, reviews)
	}
}

// ListMine returns the caller's reviews. Operators see every review.
//
// @Summary      List my reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Review
// @Failure      401  {object}  map[string]string
// @Router       /reviews/my-reviews [get]
func (h *ReviewHandler) ListMine(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	reviews, err := h.service.ListMine(c.Request().Context(), userID, role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// Delete removes one of the caller's own reviews.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        reviewId  path  string  true  "Review id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{reviewId} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("reviewId"), userID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
