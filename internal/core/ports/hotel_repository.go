package ports

import (
	"context"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

// HotelRepository persists the local hotel catalogue.
type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error)
	FindAll(ctx context.Context) ([]*domain.Hotel, error)
	FindByID(ctx context.Context, id string) (*domain.Hotel, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Hotel, error)
	Update(ctx context.Context, id string, h *domain.Hotel) (*domain.Hotel, error)
	Delete(ctx context.Context, id string) error
}
