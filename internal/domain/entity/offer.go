package entity

// Wire types for the Tequila /v2/search response. Field names follow the
// provider payload; timestamps stay as strings until ingestion parses them.

// SearchResponse is the top-level search result envelope.
type SearchResponse struct {
	SearchID string  `json:"search_id"`
	Currency string  `json:"currency"`
	FxRate   float64 `json:"fx_rate"`
	Data     []Offer `json:"data"`
}

// Offer is one priced round-trip itinerary as returned by the provider.
type Offer struct {
	ID                          string             `json:"id"`
	FlyFrom                     string             `json:"flyFrom"`
	FlyTo                       string             `json:"flyTo"`
	CityFrom                    string             `json:"cityFrom"`
	CityCodeFrom                string             `json:"cityCodeFrom"`
	CityTo                      string             `json:"cityTo"`
	CityCodeTo                  string             `json:"cityCodeTo"`
	CountryFrom                 Country            `json:"countryFrom"`
	CountryTo                   Country            `json:"countryTo"`
	NightsInDest                int                `json:"nightsInDest"`
	Quality                     float64            `json:"quality"`
	Distance                    float64            `json:"distance"`
	Duration                    OfferDuration      `json:"duration"`
	Price                       float64            `json:"price"`
	Conversion                  map[string]float64 `json:"conversion"`
	Availability                Availability       `json:"availability"`
	Airlines                    []string           `json:"airlines"`
	BookingToken                string             `json:"booking_token"`
	DeepLink                    string             `json:"deep_link"`
	FacilitatedBookingAvailable bool               `json:"facilitated_booking_available"`
	PnrCount                    int                `json:"pnr_count"`
	HasAirportChange            bool               `json:"has_airport_change"`
	TechnicalStops              int                `json:"technical_stops"`
	ThrowAwayTicketing          bool               `json:"throw_away_ticketing"`
	HiddenCityTicketing         bool               `json:"hidden_city_ticketing"`
	VirtualInterlining          bool               `json:"virtual_interlining"`
	LocalArrival                string             `json:"local_arrival"`
	LocalDeparture              string             `json:"local_departure"`
	Route                       []RouteSegment     `json:"route"`
}

// Country is a nested code/name pair on offer endpoints.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// OfferDuration carries leg durations in seconds.
type OfferDuration struct {
	Departure int `json:"departure"`
	Return    int `json:"return"`
	Total     int `json:"total"`
}

// Availability reports remaining bookable seats.
type Availability struct {
	Seats int `json:"seats"`
}

// RouteSegment is one leg inside an offer's route list. The provider encodes
// the return-leg marker as 0/1.
type RouteSegment struct {
	ID                  string `json:"id"`
	CombinationID       string `json:"combination_id"`
	FlyFrom             string `json:"flyFrom"`
	FlyTo               string `json:"flyTo"`
	CityFrom            string `json:"cityFrom"`
	CityCodeFrom        string `json:"cityCodeFrom"`
	CityTo              string `json:"cityTo"`
	CityCodeTo          string `json:"cityCodeTo"`
	Airline             string `json:"airline"`
	FlightNo            int    `json:"flight_no"`
	OperatingCarrier    string `json:"operating_carrier"`
	OperatingFlightNo   string `json:"operating_flight_no"`
	FareBasis           string `json:"fare_basis"`
	FareCategory        string `json:"fare_category"`
	FareClasses         string `json:"fare_classes"`
	FareFamily          string `json:"fare_family"`
	Return              int    `json:"return"`
	BagsRecheckRequired bool   `json:"bags_recheck_required"`
	VIConnection        bool   `json:"vi_connection"`
	Guarantee           bool   `json:"guarantee"`
	Equipment           string `json:"equipment"`
	VehicleType         string `json:"vehicle_type"`
	LocalArrival        string `json:"local_arrival"`
	LocalDeparture      string `json:"local_departure"`
}
