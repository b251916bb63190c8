package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// CreateReviewInput carries the client-supplied review fields.
type CreateReviewInput struct {
	UserID      string
	HotelID     string
	HotelSource string
	Comment     string
	Rating      int
}

type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListForHotel(ctx context.Context, hotelID string, source domain.HotelSource) ([]*domain.Review, error)

	// ListMine returns the requester's own reviews, widened to all reviews
	// when the requester holds the operator role.
	ListMine(ctx context.Context, userID, role string) ([]*domain.Review, error)
	Delete(ctx context.Context, id, userID string) error
}
