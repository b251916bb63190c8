package searchapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

func TestHotelbedsSearchHotels(t *testing.T) {
	fixedNow := time.Unix(1700000000, 0)
	wantSig := func() string {
		sum := sha256.Sum256([]byte(fmt.Sprintf("key-abcsecret-xyz%d", fixedNow.Unix())))
		return hex.EncodeToString(sum[:])
	}()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/hotels" {
			t.Errorf("path = %s, want /hotels", r.URL.Path)
		}
		if got := r.Header.Get("Api-key"); got != "key-abc" {
			t.Errorf("Api-key = %q", got)
		}
		if got := r.Header.Get("X-Signature"); got != wantSig {
			t.Errorf("X-Signature = %q, want %q", got, wantSig)
		}

		var body struct {
			Stay struct {
				CheckIn  string `json:"checkIn"`
				CheckOut string `json:"checkOut"`
			} `json:"stay"`
			Occupancies []struct {
				Rooms    int `json:"rooms"`
				Adults   int `json:"adults"`
				Children int `json:"children"`
			} `json:"occupancies"`
			Destination struct {
				Code string `json:"code"`
			} `json:"destination"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Destination.Code != "PMI" {
			t.Errorf("destination = %q, want PMI", body.Destination.Code)
		}
		if body.Stay.CheckIn != "2025-09-10" || body.Stay.CheckOut != "2025-09-14" {
			t.Errorf("stay = %+v", body.Stay)
		}
		if len(body.Occupancies) != 1 || body.Occupancies[0].Adults != 2 {
			t.Errorf("occupancies = %+v", body.Occupancies)
		}

		fmt.Fprint(w, `{"hotels":{"hotels":[
			{"code":1234,"name":"Mar Blau","categoryName":"4 STARS","destinationName":"Palma","minRate":"120.50","maxRate":"310.00","currency":"EUR"}
		]}}`)
	}))
	defer server.Close()

	client := NewHotelbedsClient("key-abc", "secret-xyz",
		WithHotelbedsBaseURL(server.URL),
		WithHotelbedsHTTPClient(server.Client()),
	)
	client.now = func() time.Time { return fixedNow }

	listings, err := client.SearchHotels(context.Background(), ports.HotelSearchCriteria{
		Destination: "PMI",
		CheckIn:     "2025-09-10",
		CheckOut:    "2025-09-14",
		Adults:      2,
		Children:    0,
		Rooms:       1,
	})
	if err != nil {
		t.Fatalf("SearchHotels: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("got %d listings, want 1", len(listings))
	}

	got := listings[0]
	if got.Code != "1234" {
		t.Errorf("code = %q, want 1234", got.Code)
	}
	if got.Name != "Mar Blau" {
		t.Errorf("name = %q", got.Name)
	}
	if got.MinRate != 120.50 || got.MaxRate != 310.00 {
		t.Errorf("rates = %v..%v", got.MinRate, got.MaxRate)
	}
	if got.Currency != "EUR" {
		t.Errorf("currency = %q", got.Currency)
	}
}

func TestHotelbedsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid signature"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := NewHotelbedsClient("k", "s",
		WithHotelbedsBaseURL(server.URL),
		WithHotelbedsHTTPClient(server.Client()),
	)

	_, err := client.SearchHotels(context.Background(), ports.HotelSearchCriteria{Destination: "PMI"})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
