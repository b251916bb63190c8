package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

// HotelService implements the local hotel catalogue. Mutations are gated to
// the operator role at the transport layer.
type HotelService struct {
	hotels ports.HotelRepository
	logger zerolog.Logger
}

func NewHotelService(hotels ports.HotelRepository, logger zerolog.Logger) *HotelService {
	return &HotelService{hotels: hotels, logger: logger}
}

func (s *HotelService) List(ctx context.Context) ([]*domain.Hotel, error) {
	return s.hotels.FindAll(ctx)
}

func (s *HotelService) Get(ctx context.Context, id string) (*domain.Hotel, error) {
	return s.hotels.FindByID(ctx, id)
}

func (s *HotelService) Create(ctx context.Context, input ports.HotelInput) (*domain.Hotel, error) {
	if input.Name == "" || input.Location == "" || input.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	hotel := &domain.Hotel{
		Name:        input.Name,
		Location:    input.Location,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.hotels.Create(ctx, hotel)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("hotel_id", created.ID).Str("name", created.Name).Msg("hotel created")
	return created, nil
}

func (s *HotelService) Update(ctx context.Context, id string, input ports.HotelInput) (*domain.Hotel, error) {
	if input.Name == "" || input.Location == "" || input.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	hotel := &domain.Hotel{
		Name:        input.Name,
		Location:    input.Location,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		UpdatedAt:   time.Now().UTC(),
	}
	return s.hotels.Update(ctx, id, hotel)
}

func (s *HotelService) Delete(ctx context.Context, id string) error {
	if err := s.hotels.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("hotel_id", id).Msg("hotel deleted")
	return nil
}
