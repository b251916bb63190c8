package domain

import (
	"errors"
	"time"
)

const (
	RatingMin = 1
	RatingMax = 5

	CommentMaxLen = 1000
)

var ErrReviewNotFound = errors.New("review not found")

// Review is a user comment on a hotel, local or external.
type Review struct {
	ID          string      `json:"id"`
	HotelID     string      `json:"hotel_id"`
	HotelSource HotelSource `json:"hotel_source"`
	UserID      string      `json:"user_id"`
	Username    string      `json:"username,omitempty"`
	Comment     string      `json:"comment"`
	Rating      int         `json:"rating"`
	CreatedAt   time.Time   `json:"created_at"`
}
