package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// BookingRepository persists bookings. All read and delete operations are
// owner-scoped: ownership is enforced as a query filter, never post hoc.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)

	// ListByUser returns the user's bookings, newest created first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)

	// DeleteByIDAndUser deletes the booking matching both id and owner.
	// Returns domain.ErrBookingNotFound when no document matches, which
	// deliberately conflates "does not exist" with "not yours".
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
