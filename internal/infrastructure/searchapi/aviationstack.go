package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

const defaultAviationstackBaseURL = "http://api.aviationstack.com/v1"

// AviationstackClient talks to the Aviationstack flight data API.
// Authentication is a plain access_key query parameter.
type AviationstackClient struct {
	accessKey string
	baseURL   string
	http      *http.Client
}

type AviationstackOption func(*AviationstackClient)

func WithAviationstackBaseURL(url string) AviationstackOption {
	return func(c *AviationstackClient) { c.baseURL = url }
}

func WithAviationstackHTTPClient(hc *http.Client) AviationstackOption {
	return func(c *AviationstackClient) { c.http = hc }
}

func NewAviationstackClient(accessKey string, opts ...AviationstackOption) *AviationstackClient {
	c := &AviationstackClient{
		accessKey: accessKey,
		baseURL:   defaultAviationstackBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type aviationstackResponse struct {
	Data []struct {
		FlightDate   string `json:"flight_date"`
		FlightStatus string `json:"flight_status"`
		Departure    struct {
			Airport   string `json:"airport"`
			IATA      string `json:"iata"`
			Scheduled string `json:"scheduled"`
		} `json:"departure"`
		Arrival struct {
			Airport   string `json:"airport"`
			IATA      string `json:"iata"`
			Scheduled string `json:"scheduled"`
		} `json:"arrival"`
		Airline struct {
			Name string `json:"name"`
		} `json:"airline"`
		Flight struct {
			Number string `json:"number"`
		} `json:"flight"`
	} `json:"data"`
}

func (c *AviationstackClient) SearchFlights(ctx context.Context, criteria ports.FlightSearchCriteria) ([]ports.FlightListing, error) {
	query := url.Values{}
	query.Set("access_key", c.accessKey)
	if criteria.Status != "" {
		query.Set("flight_status", criteria.Status)
	}
	if criteria.DepIATA != "" {
		query.Set("dep_iata", criteria.DepIATA)
	}
	if criteria.ArrIATA != "" {
		query.Set("arr_iata", criteria.ArrIATA)
	}
	if criteria.FlightDate != "" {
		query.Set("flight_date", criteria.FlightDate)
	}
	if criteria.Limit > 0 {
		query.Set("limit", strconv.Itoa(criteria.Limit))
	}
	if criteria.Offset > 0 {
		query.Set("offset", strconv.Itoa(criteria.Offset))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flights?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("aviationstack build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aviationstack request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("aviationstack status %d: %s", resp.StatusCode, body)
	}

	var decoded aviationstackResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("aviationstack decode response: %w", err)
	}

	listings := make([]ports.FlightListing, 0, len(decoded.Data))
	for _, f := range decoded.Data {
		listings = append(listings, ports.FlightListing{
			FlightDate:         f.FlightDate,
			FlightStatus:       f.FlightStatus,
			FlightNumber:       f.Flight.Number,
			AirlineName:        f.Airline.Name,
			DepartureAirport:   f.Departure.Airport,
			DepartureIATA:      f.Departure.IATA,
			DepartureScheduled: f.Departure.Scheduled,
			ArrivalAirport:     f.Arrival.Airport,
			ArrivalIATA:        f.Arrival.IATA,
			ArrivalScheduled:   f.Arrival.Scheduled,
		})
	}
	return listings, nil
}
