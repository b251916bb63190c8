package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// ReviewRepository persists hotel reviews. Listings are newest first.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	ListByHotel(ctx context.Context, hotelID string, source domain.HotelSource) ([]*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
	ListAll(ctx context.Context) ([]*domain.Review, error)

	// DeleteByIDAndUser deletes the review matching both id and owner,
	// returning domain.ErrReviewNotFound when nothing matches.
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
