package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

// SearchHandler proxies third-party availability and flight data through the
// caching search service.
type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchHotels queries external hotel availability.
//
// @Summary      Search external hotel availability
// @Tags         search
// @Produce      json
// @Param        destination  query  string  true   "Destination code (e.g. PMI)"
// @Param        check_in     query  string  true   "Check-in date YYYY-MM-DD"
// @Param        check_out    query  string  true   "Check-out date YYYY-MM-DD"
// @Param        adults       query  int     false  "Adults per room (default 2)"
// @Param        children     query  int     false  "Children per room"
// @Param        rooms        query  int     false  "Rooms (default 1)"
// @Success      200  {array}   ports.HotelListing
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /search/hotels [get]
func (h *SearchHandler) SearchHotels(c echo.Context) error {
	criteria := ports.HotelSearchCriteria{
		Destination: c.QueryParam("destination"),
		CheckIn:     c.QueryParam("check_in"),
		CheckOut:    c.QueryParam("check_out"),
		Adults:      queryInt(c, "adults", 2),
		Children:    queryInt(c, "children", 0),
		Rooms:       queryInt(c, "rooms", 1),
	}
	if criteria.Destination == "" || criteria.CheckIn == "" || criteria.CheckOut == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "destination, check_in and check_out are required"})
	}

	listings, err := h.service.SearchHotels(c.Request().Context(), criteria)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "hotel availability lookup failed"})
	}
	return c.JSON(http.StatusOK, listings)
}

// SearchFlights queries external flight data.
//
// @Summary      Search flights
// @Tags         search
// @Produce      json
// @Param        flight_status  query  string  false  "Flight status filter"
// @Param        dep_iata       query  string  false  "Departure airport IATA"
// @Param        arr_iata       query  string  false  "Arrival airport IATA"
// @Param        flight_date    query  string  false  "Flight date YYYY-MM-DD"
// @Param        limit          query  int     false  "Page size (default 25)"
// @Param        offset         query  int     false  "Page offset"
// @Success      200  {array}   ports.FlightListing
// @Failure      502  {object}  map[string]string
// @Router       /search/flights [get]
func (h *SearchHandler) SearchFlights(c echo.Context) error {
	criteria := ports.FlightSearchCriteria{
		Status:     c.QueryParam("flight_status"),
		DepIATA:    c.QueryParam("dep_iata"),
		ArrIATA:    c.QueryParam("arr_iata"),
		FlightDate: c.QueryParam("flight_date"),
		Limit:      queryInt(c, "limit", 25),
		Offset:     queryInt(c, "offset", 0),
	}

	flights, err := h.service.SearchFlights(c.Request().Context(), criteria)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "flight lookup failed"})
	}
	return c.JSON(http.StatusOK, flights)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
