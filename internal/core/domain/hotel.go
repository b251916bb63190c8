package domain

import (
	"errors"
	"time"
)

// HotelSource distinguishes hotels managed in our own catalogue from hotels
// surfaced by third-party search providers.
type HotelSource string

const (
	SourceLocal    HotelSource = "local"
	SourceExternal HotelSource = "external"
)

// Valid reports whether s is a recognised hotel source.
func (s HotelSource) Valid() bool {
	return s == SourceLocal || s == SourceExternal
}

var ErrHotelNotFound = errors.New("hotel not found")

// ErrExternalSourceNotSupported is returned when an operation needs to resolve
// an external hotel's details. External catalogue lookups are not integrated
// yet; callers must not fabricate a name in their place.
var ErrExternalSourceNotSupported = errors.New("external hotel source not yet integrated")

// Hotel is a locally managed catalogue entry.
type Hotel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
