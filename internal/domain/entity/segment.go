package entity

import (
	"time"
)

// Segment represents a single flown leg. Rows are immutable once inserted;
// an id seen twice is assumed to carry identical content and is skipped.
type Segment struct {
	ID                  string
	CombinationID       string
	FlyFrom             string
	FlyTo               string
	CityFrom            string
	CityCodeFrom        string
	CityTo              string
	CityCodeTo          string
	Airline             string
	FlightNo            int
	OperatingCarrier    string
	OperatingFlightNo   string
	FareBasis           string
	FareCategory        string
	FareClasses         string
	FareFamily          string
	Return              bool
	BagsRecheckRequired bool
	VIConnection        bool
	Guarantee           bool
	Equipment           string
	VehicleType         string
	LocalArrival        time.Time
	LocalDeparture      time.Time
}
