package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// CreateBookingInput carries the client-supplied booking fields. The checkout
// date is intentionally absent: it is always derived server-side.
type CreateBookingInput struct {
	UserID      string
	HotelID     string
	HotelSource string
	CheckInDate string // YYYY-MM-DD
	StayDays    int
}

type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListMine(ctx context.Context, userID string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id, userID string) error
}
