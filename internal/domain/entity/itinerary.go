package entity

import (
	"time"
)

// Itinerary represents a priced round-trip offer as stored for one import
// date. The same provider id may reappear on a later date and is stored as a
// separate row; within one date it is unique.
type Itinerary struct {
	ID                          string
	ImportDate                  time.Time // normalized to midnight UTC
	FlyFrom                     string
	FlyTo                       string
	CityFrom                    string
	CityCodeFrom                string
	CityTo                      string
	CityCodeTo                  string
	CountryFromCode             string
	CountryFromName             string
	CountryToCode               string
	CountryToName               string
	NightsInDest                int
	Quality                     float64
	Distance                    float64
	DurationDeparture           int
	DurationReturn              int
	DurationTotal               int
	Price                       float64
	ConversionEUR               float64
	ConversionHUF               float64
	AvailabilitySeats           int
	Airlines                    string // resolved carrier names, comma-joined in provider order
	BookingToken                string
	DeepLink                    string
	FacilitatedBookingAvailable bool
	PnrCount                    int
	HasAirportChange            bool
	TechnicalStops              int
	ThrowAwayTicketing          bool
	HiddenCityTicketing         bool
	VirtualInterlining          bool
	LocalArrival                time.Time
	LocalDeparture              time.Time
}
