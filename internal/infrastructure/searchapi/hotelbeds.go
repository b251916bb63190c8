package searchapi

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

const defaultHotelbedsBaseURL = "https://api.test.hotelbeds.com/hotel-api/1.0"

// HotelbedsClient talks to the Hotelbeds availability API. Requests are
// signed per the vendor scheme: X-Signature is the hex SHA-256 of
// apiKey + secret + current unix seconds.
type HotelbedsClient struct {
	apiKey    string
	apiSecret string
	baseURL   string
	http      *http.Client
	now       func() time.Time
}

type HotelbedsOption func(*HotelbedsClient)

func WithHotelbedsBaseURL(url string) HotelbedsOption {
	return func(c *HotelbedsClient) { c.baseURL = url }
}

func WithHotelbedsHTTPClient(hc *http.Client) HotelbedsOption {
	return func(c *HotelbedsClient) { c.http = hc }
}

func NewHotelbedsClient(apiKey, apiSecret string, opts ...HotelbedsOption) *HotelbedsClient {
	c := &HotelbedsClient{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   defaultHotelbedsBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type hotelbedsRequest struct {
	Stay struct {
		CheckIn  string `json:"checkIn"`
		CheckOut string `json:"checkOut"`
	} `json:"stay"`
	Occupancies []hotelbedsOccupancy `json:"occupancies"`
	Destination struct {
		Code string `json:"code"`
	} `json:"destination"`
}

type hotelbedsOccupancy struct {
	Rooms    int `json:"rooms"`
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type hotelbedsResponse struct {
	Hotels struct {
		Hotels []struct {
			Code            int    `json:"code"`
			Name            string `json:"name"`
			CategoryName    string `json:"categoryName"`
			DestinationName string `json:"destinationName"`
			MinRate         string `json:"minRate"`
			MaxRate         string `json:"maxRate"`
			Currency        string `json:"currency"`
		} `json:"hotels"`
	} `json:"hotels"`
}

func (c *HotelbedsClient) signature() string {
	payload := fmt.Sprintf("%s%s%d", c.apiKey, c.apiSecret, c.now().Unix())
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func (c *HotelbedsClient) SearchHotels(ctx context.Context, criteria ports.HotelSearchCriteria) ([]ports.HotelListing, error) {
	var reqBody hotelbedsRequest
	reqBody.Stay.CheckIn = criteria.CheckIn
	reqBody.Stay.CheckOut = criteria.CheckOut
	reqBody.Destination.Code = criteria.Destination
	reqBody.Occupancies = []hotelbedsOccupancy{{
		Rooms:    criteria.Rooms,
		Adults:   criteria.Adults,
		Children: criteria.Children,
	}}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("hotelbeds encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hotels", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("hotelbeds build request: %w", err)
	}
	req.Header.Set("Api-key", c.apiKey)
	req.Header.Set("X-Signature", c.signature())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotelbeds request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("hotelbeds status %d: %s", resp.StatusCode, body)
	}

	var decoded hotelbedsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("hotelbeds decode response: %w", err)
	}

	listings := make([]ports.HotelListing, 0, len(decoded.Hotels.Hotels))
	for _, h := range decoded.Hotels.Hotels {
		minRate, _ := strconv.ParseFloat(h.MinRate, 64)
		maxRate, _ := strconv.ParseFloat(h.MaxRate, 64)
		listings = append(listings, ports.HotelListing{
			Code:        strconv.Itoa(h.Code),
			Name:        h.Name,
			Category:    h.CategoryName,
			Destination: h.DestinationName,
			MinRate:     minRate,
			MaxRate:     maxRate,
			Currency:    h.Currency,
		})
	}
	return listings, nil
}
