package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

type stubBookingService struct {
	createFn func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Booking, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (s *stubBookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, input)
}

func (s *stubBookingService) ListMine(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.listFn(ctx, userID)
}

func (s *stubBookingService) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestBookingHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
			if input.UserID != "user_1" {
				t.Fatalf("user id = %q, want user_1", input.UserID)
			}
			if input.HotelID != "hotel_1" || input.StayDays != 3 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Booking{
				ID:        "booking_1",
				UserID:    input.UserID,
				HotelID:   input.HotelID,
				HotelName: "Mar Blau",
				CreatedAt: time.Now(),
			}, nil
		},
	}
	handler := NewBookingHandler(stub)

	body := strings.NewReader(`{"hotel_id":"hotel_1","hotel_source":"local","check_in_date":"2025-07-01","stay_days":3}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user_1", domain.RoleUser)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBookingHandler_Create_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewBookingHandler(&stubBookingService{})

	body := strings.NewReader(`{"hotel_id":"hotel_1","hotel_source":"local","check_in_date":"2025-07-01","stay_days":3}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestBookingHandler_Create_ExternalSource(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
			return nil, domain.ErrExternalSourceNotSupported
		},
	}
	handler := NewBookingHandler(stub)

	body := strings.NewReader(`{"hotel_id":"EXT-9","hotel_source":"external","check_in_date":"2025-07-01","stay_days":3}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user_1", domain.RoleUser)

	_ = handler.Create(c)

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rec.Code)
	}
}

func TestBookingHandler_Create_BadSource(t *testing.T) {
	e := newTestEcho()
	handler := NewBookingHandler(&stubBookingService{})

	body := strings.NewReader(`{"hotel_id":"hotel_1","hotel_source":"imaginary","check_in_date":"2025-07-01","stay_days":3}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user_1", domain.RoleUser)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookingHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		deleteFn: func(ctx context.Context, id, userID string) error {
			if id != "booking_1" || userID != "user_1" {
				t.Fatalf("unexpected args: %s %s", id, userID)
			}
			return nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/bookings/booking_1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user_1", domain.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("booking_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected confirmation message, got %+v", resp)
	}
}

func TestBookingHandler_Create_StayDaysReachesService(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
			if input.StayDays != 0 {
				t.Fatalf("stay days = %d, want 0 forwarded to the service", input.StayDays)
			}
			return nil, domain.ErrHotelNotFound
		},
	}
	handler := NewBookingHandler(stub)

	// A non-positive stay length must not short-circuit at the schema:
	// hotel existence is checked first, so an unknown hotel wins with 404.
	body := strings.NewReader(`{"hotel_id":"hotel_missing","hotel_source":"local","check_in_date":"2025-07-01","stay_days":0}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user_1", domain.RoleUser)

	_ = handler.Create(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookingHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		deleteFn: func(ctx context.Context, id, userID string) error {
			return domain.ErrBookingNotFound
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/bookings/booking_9", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user_1", domain.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("booking_9")

	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookingHandler_ListMine(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		listFn: func(ctx context.Context, userID string) ([]*domain.Booking, error) {
			if userID != "user_1" {
				t.Fatalf("user id = %q, want user_1", userID)
			}
			return []*domain.Booking{{ID: "booking_1", UserID: userID}}, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user_1", domain.RoleUser)

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
