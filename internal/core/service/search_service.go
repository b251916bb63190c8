package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderstay/travel-api/internal/api/metrics"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

// SearchCache abstracts the TTL'd response cache (Redis).
type SearchCache interface {
	// Get unmarshals the cached value for key into v, reporting whether the
	// key was present.
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

// SearchService fronts the external search providers with a cache-aside
// layer. Cache failures are logged and ignored: the upstream call proceeds.
type searchService struct {
	hotels  ports.HotelSearchProvider
	flights ports.FlightSearchProvider
	cache   SearchCache
	log     zerolog.Logger
}

// NewSearchService returns a SearchService implementation.
func NewSearchService(
	hotels ports.HotelSearchProvider,
	flights ports.FlightSearchProvider,
	cache SearchCache,
	log zerolog.Logger,
) ports.SearchService {
	return &searchService{hotels: hotels, flights: flights, cache: cache, log: log}
}

func (s *searchService) SearchHotels(ctx context.Context, criteria ports.HotelSearchCriteria) ([]ports.HotelListing, error) {
	key := fmt.Sprintf("search:hotels:%s:%s:%s:%d:%d:%d",
		criteria.Destination, criteria.CheckIn, criteria.CheckOut,
		criteria.Adults, criteria.Children, criteria.Rooms)

	var cached []ports.HotelListing
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
	} else if hit {
		metrics.SearchRequestsTotal.WithLabelValues("hotelbeds", "hit").Inc()
		return cached, nil
	}

	start := time.Now()
	listings, err := s.hotels.SearchHotels(ctx, criteria)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("hotelbeds", "error").Inc()
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	metrics.SearchDuration.WithLabelValues("hotelbeds").Observe(time.Since(start).Seconds())
	metrics.SearchRequestsTotal.WithLabelValues("hotelbeds", "miss").Inc()

	if err := s.cache.Set(ctx, key, listings); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
	}
	return listings, nil
}

func (s *searchService) SearchFlights(ctx context.Context, criteria ports.FlightSearchCriteria) ([]ports.FlightListing, error) {
	key := fmt.Sprintf("search:flights:%s:%s:%s:%s:%d:%d",
		criteria.Status, criteria.DepIATA, criteria.ArrIATA,
		criteria.FlightDate, criteria.Limit, criteria.Offset)

	var cached []ports.FlightListing
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
	} else if hit {
		metrics.SearchRequestsTotal.WithLabelValues("aviationstack", "hit").Inc()
		return cached, nil
	}

	start := time.Now()
	listings, err := s.flights.SearchFlights(ctx, criteria)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("aviationstack", "error").Inc()
		return nil, fmt.Errorf("search flights: %w", err)
	}
	metrics.SearchDuration.WithLabelValues("aviationstack").Observe(time.Since(start).Seconds())
	metrics.SearchRequestsTotal.WithLabelValues("aviationstack", "miss").Inc()

	if err := s.cache.Set(ctx, key, listings); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
	}
	return listings, nil
}
