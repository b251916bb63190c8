package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderstay/travel-api/internal/api/metrics"
	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

const checkInDateLayout = "2006-01-02"

// BookingService implements the booking lifecycle.
type BookingService struct {
	bookings ports.BookingRepository
	hotels   ports.HotelRepository
	logger   zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, hotels ports.HotelRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, hotels: hotels, logger: logger}
}

// Create validates the input and persists a booking with derived fields.
// Validation order: field presence, hotel existence, date parseability,
// stay length. The hotel name is snapshotted at creation and never
// re-fetched afterwards.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.HotelID == "" || input.HotelSource == "" || input.CheckInDate == "" {
		return nil, domain.ErrInvalidInput
	}

	source := domain.HotelSource(input.HotelSource)
	if !source.Valid() {
		return nil, domain.ErrInvalidInput
	}

	var hotelName string
	switch source {
	case domain.SourceLocal:
		hotel, err := s.hotels.FindByID(ctx, input.HotelID)
		if err != nil {
			return nil, err
		}
		hotelName = hotel.Name
	case domain.SourceExternal:
		// External catalogue lookups are not integrated; surface the gap
		// instead of fabricating a name.
		return nil, domain.ErrExternalSourceNotSupported
	}

	checkIn, err := time.Parse(checkInDateLayout, input.CheckInDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	if input.StayDays <= 0 {
		return nil, domain.ErrInvalidInput
	}

	booking := &domain.Booking{
		UserID:       input.UserID,
		HotelID:      input.HotelID,
		HotelSource:  source,
		HotelName:    hotelName,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, input.StayDays),
		StayDays:     input.StayDays,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("hotel_id", input.HotelID).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("user_id", created.UserID).
		Str("hotel_id", created.HotelID).
		Msg("booking created")
	metrics.BookingsCreatedTotal.WithLabelValues(string(source)).Inc()

	return created, nil
}

// ListMine returns the requester's bookings, newest created first.
func (s *BookingService) ListMine(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// Delete removes the requester's booking. A booking owned by someone else is
// reported as not found, never as forbidden.
func (s *BookingService) Delete(ctx context.Context, id, userID string) error {
	if err := s.bookings.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().Str("booking_id", id).Str("user_id", userID).Msg("booking deleted")
	return nil
}
