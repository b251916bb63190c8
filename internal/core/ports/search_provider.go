package ports

import "context"

// HotelSearchCriteria selects external hotel availability.
type HotelSearchCriteria struct {
	Destination string
	CheckIn     string // YYYY-MM-DD
	CheckOut    string // YYYY-MM-DD
	Adults      int
	Children    int
	Rooms       int
}

// HotelListing is a vendor-neutral availability row. The core never depends
// on a specific vendor's request or response shape.
type HotelListing struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Destination string  `json:"destination,omitempty"`
	MinRate     float64 `json:"min_rate"`
	MaxRate     float64 `json:"max_rate"`
	Currency    string  `json:"currency,omitempty"`
}

// HotelSearchProvider is an external availability source.
type HotelSearchProvider interface {
	SearchHotels(ctx context.Context, criteria HotelSearchCriteria) ([]HotelListing, error)
}

// FlightSearchCriteria selects flights from an external flight data source.
type FlightSearchCriteria struct {
	Status     string
	DepIATA    string
	ArrIATA    string
	FlightDate string
	Limit      int
	Offset     int
}

// FlightListing is the trimmed flight view exposed to clients.
type FlightListing struct {
	FlightDate         string `json:"flight_date"`
	FlightStatus       string `json:"flight_status"`
	FlightNumber       string `json:"flight_number"`
	AirlineName        string `json:"airline_name"`
	DepartureAirport   string `json:"departure_airport"`
	DepartureIATA      string `json:"departure_iata"`
	DepartureScheduled string `json:"departure_scheduled"`
	ArrivalAirport     string `json:"arrival_airport"`
	ArrivalIATA        string `json:"arrival_iata"`
	ArrivalScheduled   string `json:"arrival_scheduled"`
}

// FlightSearchProvider is an external flight data source.
type FlightSearchProvider interface {
	SearchFlights(ctx context.Context, criteria FlightSearchCriteria) ([]FlightListing, error)
}

// SearchService fronts the external providers, adding response caching.
type SearchService interface {
	SearchHotels(ctx context.Context, criteria HotelSearchCriteria) ([]HotelListing, error)
	SearchFlights(ctx context.Context, criteria FlightSearchCriteria) ([]FlightListing, error)
}
