package domain

import (
	"errors"
	"time"
)

const (
	RoleUser     = "user"
	RoleOperator = "operator"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. The password is stored only as a bcrypt
// hash and never serialised into responses.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Username       string    `json:"username,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	FavoriteHotels []string  `json:"favorite_hotels,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
