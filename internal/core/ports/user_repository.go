package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields; nil means leave as is.
type ProfileUpdate struct {
	Username  *string
	AvatarURL *string
}

// UserRepository persists accounts and the favorites set held on them.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)

	// AddFavorite and RemoveFavorite are idempotent set operations; both
	// return the resulting favorite hotel ids.
	AddFavorite(ctx context.Context, userID, hotelID string) ([]string, error)
	RemoveFavorite(ctx context.Context, userID, hotelID string) ([]string, error)
}
