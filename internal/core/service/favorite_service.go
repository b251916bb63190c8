package service

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

// FavoriteService manages the requester's favorite hotels. All operations are
// self-scoped: the user id always comes from the session, never from input.
type FavoriteService struct {
	users  ports.UserRepository
	hotels ports.HotelRepository
}

func NewFavoriteService(users ports.UserRepository, hotels ports.HotelRepository) *FavoriteService {
	return &FavoriteService{users: users, hotels: hotels}
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]*domain.Hotel, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.FavoriteHotels)
}

// Add puts a hotel in the favorites set. Adding an already-favorited hotel is
// a no-op: membership is a set union.
func (s *FavoriteService) Add(ctx context.Context, userID, hotelID string) ([]*domain.Hotel, error) {
	if hotelID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.hotels.FindByID(ctx, hotelID); err != nil {
		return nil, err
	}

	ids, err := s.users.AddFavorite(ctx, userID, hotelID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ids)
}

// Remove takes a hotel out of the favorites set. Removing a hotel that is not
// favorited is a no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID, hotelID string) ([]*domain.Hotel, error) {
	if hotelID == "" {
		return nil, domain.ErrInvalidInput
	}

	ids, err := s.users.RemoveFavorite(ctx, userID, hotelID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ids)
}

func (s *FavoriteService) resolve(ctx context.Context, ids []string) ([]*domain.Hotel, error) {
	if len(ids) == 0 {
		return []*domain.Hotel{}, nil
	}
	return s.hotels.FindByIDs(ctx, ids)
}
