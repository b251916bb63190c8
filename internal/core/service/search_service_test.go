package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

type mapCache struct {
	entries map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (c *mapCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

type stubHotelProvider struct {
	calls    int
	listings []ports.HotelListing
	err      error
}

func (p *stubHotelProvider) SearchHotels(_ context.Context, _ ports.HotelSearchCriteria) ([]ports.HotelListing, error) {
	p.calls++
	return p.listings, p.err
}

type stubFlightProvider struct {
	calls    int
	listings []ports.FlightListing
}

func (p *stubFlightProvider) SearchFlights(_ context.Context, _ ports.FlightSearchCriteria) ([]ports.FlightListing, error) {
	p.calls++
	return p.listings, nil
}

func TestSearchService_HotelsCacheAside(t *testing.T) {
	provider := &stubHotelProvider{listings: []ports.HotelListing{{Code: "H1", Name: "Harbour View", MinRate: 120}}}
	flights := &stubFlightProvider{}
	svc := NewSearchService(provider, flights, newMapCache(), zerolog.Nop())

	criteria := ports.HotelSearchCriteria{Destination: "PMI", CheckIn: "2025-07-01", CheckOut: "2025-07-03", Adults: 2, Rooms: 1}

	first, err := svc.SearchHotels(context.Background(), criteria)
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	second, err := svc.SearchHotels(context.Background(), criteria)
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("expected single upstream call, got %d", provider.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Code != "H1" {
		t.Fatalf("unexpected listings: %+v / %+v", first, second)
	}
}

func TestSearchService_DistinctCriteriaMissCache(t *testing.T) {
	provider := &stubHotelProvider{listings: []ports.HotelListing{{Code: "H1"}}}
	svc := NewSearchService(provider, &stubFlightProvider{}, newMapCache(), zerolog.Nop())

	if _, err := svc.SearchHotels(context.Background(), ports.HotelSearchCriteria{Destination: "PMI"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if _, err := svc.SearchHotels(context.Background(), ports.HotelSearchCriteria{Destination: "BCN"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("expected 2 upstream calls for distinct criteria, got %d", provider.calls)
	}
}

func TestSearchService_UpstreamErrorPropagates(t *testing.T) {
	provider := &stubHotelProvider{err: errors.New("upstream down")}
	svc := NewSearchService(provider, &stubFlightProvider{}, newMapCache(), zerolog.Nop())

	if _, err := svc.SearchHotels(context.Background(), ports.HotelSearchCriteria{Destination: "PMI"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestSearchService_FlightsCacheAside(t *testing.T) {
	flights := &stubFlightProvider{listings: []ports.FlightListing{{FlightNumber: "CX250"}}}
	svc := NewSearchService(&stubHotelProvider{}, flights, newMapCache(), zerolog.Nop())

	criteria := ports.FlightSearchCriteria{DepIATA: "HKG", ArrIATA: "LHR", Limit: 10}
	if _, err := svc.SearchFlights(context.Background(), criteria); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if _, err := svc.SearchFlights(context.Background(), criteria); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if flights.calls != 1 {
		t.Fatalf("expected single upstream call, got %d", flights.calls)
	}
}
