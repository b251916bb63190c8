package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

type stubHotelRepo struct {
	hotels map[string]*domain.Hotel
	seq    int
}

func newStubHotelRepo() *stubHotelRepo {
	return &stubHotelRepo{hotels: make(map[string]*domain.Hotel)}
}

func (r *stubHotelRepo) add(name string) string {
	r.seq++
	id := fmt.Sprintf("hotel_%d", r.seq)
	r.hotels[id] = &domain.Hotel{ID: id, Name: name, Location: "HK", Price: 100}
	return id
}

func (r *stubHotelRepo) Create(_ context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	r.seq++
	clone := *h
	clone.ID = fmt.Sprintf("hotel_%d", r.seq)
	r.hotels[clone.ID] = &clone
	return &clone, nil
}

func (r *stubHotelRepo) FindAll(_ context.Context) ([]*domain.Hotel, error) {
	out := make([]*domain.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		clone := *h
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubHotelRepo) FindByID(_ context.Context, id string) (*domain.Hotel, error) {
	h, ok := r.hotels[id]
	if !ok {
		return nil, domain.ErrHotelNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *stubHotelRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Hotel, error) {
	out := make([]*domain.Hotel, 0, len(ids))
	for _, id := range ids {
		if h, ok := r.hotels[id]; ok {
			clone := *h
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubHotelRepo) Update(_ context.Context, id string, h *domain.Hotel) (*domain.Hotel, error) {
	if _, ok := r.hotels[id]; !ok {
		return nil, domain.ErrHotelNotFound
	}
	clone := *h
	clone.ID = id
	r.hotels[id] = &clone
	return &clone, nil
}

func (r *stubHotelRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.hotels[id]; !ok {
		return domain.ErrHotelNotFound
	}
	delete(r.hotels, id)
	return nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
	seq      int
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.seq++
	clone := *b
	clone.ID = fmt.Sprintf("booking_%d", r.seq)
	r.bookings = append(r.bookings, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].UserID == userID {
			clone := *r.bookings[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) DeleteByIDAndUser(_ context.Context, id, userID string) error {
	for i, b := range r.bookings {
		if b.ID == id && b.UserID == userID {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return domain.ErrBookingNotFound
}

func newTestBookingService() (*BookingService, *stubBookingRepo, *stubHotelRepo) {
	bookings := &stubBookingRepo{}
	hotels := newStubHotelRepo()
	return NewBookingService(bookings, hotels, zerolog.Nop()), bookings, hotels
}

func TestBookingService_Create_DerivesCheckOutDate(t *testing.T) {
	svc, _, hotels := newTestBookingService()
	hotelID := hotels.add("Harbour View")

	booking, err := svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:      "user_1",
		HotelID:     hotelID,
		HotelSource: "local",
		CheckInDate: "2025-07-01",
		StayDays:    3,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	wantOut := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	if !booking.CheckOutDate.Equal(wantOut) {
		t.Fatalf("expected checkout %s, got %s", wantOut, booking.CheckOutDate)
	}
	if booking.StayDays != 3 {
		t.Fatalf("expected stay days 3, got %d", booking.StayDays)
	}
	if booking.HotelName != "Harbour View" {
		t.Fatalf("expected hotel name snapshot, got %q", booking.HotelName)
	}
}

func TestBookingService_Create_Validation(t *testing.T) {
	svc, _, hotels := newTestBookingService()
	hotelID := hotels.add("Harbour View")

	cases := []struct {
		name  string
		input ports.CreateBookingInput
		want  error
	}{
		{
			name:  "missing hotel id",
			input: ports.CreateBookingInput{UserID: "u", HotelSource: "local", CheckInDate: "2025-07-01", StayDays: 1},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "bad source",
			input: ports.CreateBookingInput{UserID: "u", HotelID: hotelID, HotelSource: "galactic", CheckInDate: "2025-07-01", StayDays: 1},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "unknown local hotel",
			input: ports.CreateBookingInput{UserID: "u", HotelID: "hotel_missing", HotelSource: "local", CheckInDate: "2025-07-01", StayDays: 1},
			want:  domain.ErrHotelNotFound,
		},
		{
			name:  "unparseable date",
			input: ports.CreateBookingInput{UserID: "u", HotelID: hotelID, HotelSource: "local", CheckInDate: "July 1st", StayDays: 1},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "zero stay days",
			input: ports.CreateBookingInput{UserID: "u", HotelID: hotelID, HotelSource: "local", CheckInDate: "2025-07-01", StayDays: 0},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "negative stay days",
			input: ports.CreateBookingInput{UserID: "u", HotelID: hotelID, HotelSource: "local", CheckInDate: "2025-07-01", StayDays: -2},
			want:  domain.ErrInvalidInput,
		},
		{
			// Existence is checked before stay length, so the unknown
			// hotel wins even when both are wrong.
			name:  "unknown hotel beats zero stay days",
			input: ports.CreateBookingInput{UserID: "u", HotelID: "hotel_missing", HotelSource: "local", CheckInDate: "2025-07-01", StayDays: 0},
			want:  domain.ErrHotelNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.input); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBookingService_Create_ExternalSourceNotIntegrated(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:      "user_1",
		HotelID:     "EXT-123",
		HotelSource: "external",
		CheckInDate: "2025-07-01",
		StayDays:    2,
	})
	if err != domain.ErrExternalSourceNotSupported {
		t.Fatalf("expected ErrExternalSourceNotSupported, got %v", err)
	}
}

func TestBookingService_ListMine_OwnerScopedNewestFirst(t *testing.T) {
	svc, _, hotels := newTestBookingService()
	hotelID := hotels.add("Harbour View")

	for i, user := range []string{"user_1", "user_2", "user_1"} {
		if _, err := svc.Create(context.Background(), ports.CreateBookingInput{
			UserID:      user,
			HotelID:     hotelID,
			HotelSource: "local",
			CheckInDate: fmt.Sprintf("2025-07-0%d", i+1),
			StayDays:    1,
		}); err != nil {
			t.Fatalf("create booking %d: %v", i, err)
		}
	}

	mine, err := svc.ListMine(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(mine))
	}
	if !mine[0].CheckInDate.After(mine[1].CheckInDate) {
		t.Fatalf("expected newest first, got %s then %s", mine[0].CheckInDate, mine[1].CheckInDate)
	}
	for _, b := range mine {
		if b.UserID != "user_1" {
			t.Fatalf("foreign booking in listing: %+v", b)
		}
	}
}

func TestBookingService_Delete_NotOwnedMaskedAsNotFound(t *testing.T) {
	svc, _, hotels := newTestBookingService()
	hotelID := hotels.add("Harbour View")

	booking, err := svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:      "user_1",
		HotelID:     hotelID,
		HotelSource: "local",
		CheckInDate: "2025-07-01",
		StayDays:    1,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if err := svc.Delete(context.Background(), booking.ID, "user_2"); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), booking.ID, "user_1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), booking.ID, "user_1"); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound for repeated delete, got %v", err)
	}
}
