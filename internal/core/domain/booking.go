package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking records a stay reserved by a user. CheckOutDate is always derived
// server-side as CheckInDate + StayDays and is never accepted from input.
// HotelName is a snapshot captured at creation time, not a live reference.
type Booking struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	HotelID      string      `json:"hotel_id"`
	HotelSource  HotelSource `json:"hotel_source"`
	HotelName    string      `json:"hotel_name"`
	CheckInDate  time.Time   `json:"check_in_date"`
	CheckOutDate time.Time   `json:"check_out_date"`
	StayDays     int         `json:"stay_days"`
	CreatedAt    time.Time   `json:"created_at"`
}
