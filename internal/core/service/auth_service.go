package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wanderstay/travel-api/internal/api/metrics"
	"github.com/wanderstay/travel-api/internal/auth"
	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users      ports.UserRepository
	tokens     *auth.TokenService
	signUpCode string
}

func NewAuthService(users ports.UserRepository, tokens *auth.TokenService, signUpCode string) *AuthService {
	return &AuthService{users: users, tokens: tokens, signUpCode: signUpCode}
}

func (s *AuthService) Register(ctx context.Context, email, password, signUpCode string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if signUpCode != "" && signUpCode == s.signUpCode {
		role = domain.RoleOperator
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	return &ports.AuthResult{Token: token, Role: created.Role}, nil
}

// Login verifies credentials and issues a token. The same error is returned
// for an unknown email and a wrong password so callers cannot probe for
// registered addresses.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return &ports.AuthResult{Token: token, Role: user.Role}, nil
}
