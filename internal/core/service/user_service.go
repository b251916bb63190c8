package service

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

// UserService implements profile reads and updates for the session's own user.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateUsername(ctx context.Context, userID, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.users.UpdateProfile(ctx, userID, ports.ProfileUpdate{Username: &username})
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, error) {
	if avatarURL == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.users.UpdateProfile(ctx, userID, ports.ProfileUpdate{AvatarURL: &avatarURL})
}
