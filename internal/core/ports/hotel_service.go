package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// HotelInput carries the operator-supplied catalogue fields.
type HotelInput struct {
	Name        string
	Location    string
	Price       float64
	Description string
	ImageURL    string
}

type HotelService interface {
	List(ctx context.Context) ([]*domain.Hotel, error)
	Get(ctx context.Context, id string) (*domain.Hotel, error)
	Create(ctx context.Context, input HotelInput) (*domain.Hotel, error)
	Update(ctx context.Context, id string, input HotelInput) (*domain.Hotel, error)
	Delete(ctx context.Context, id string) error
}
