package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// UserService exposes profile operations scoped to the requesting identity.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateUsername(ctx context.Context, userID, username string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, error)
}

// FavoriteService manages the requester's favorite hotels. Favorites never
// take an arbitrary owner id: the scope is always the session's own user.
type FavoriteService interface {
	List(ctx context.Context, userID string) ([]*domain.Hotel, error)
	Add(ctx context.Context, userID, hotelID string) ([]*domain.Hotel, error)
	Remove(ctx context.Context, userID, hotelID string) ([]*domain.Hotel, error)
}
