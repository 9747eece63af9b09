package repository

import (
	"context"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightStore implements the FlightStore interface on one GORM handle.
// Table and column names keep the layout of the original database so an
// existing file keeps working.
type GormFlightStore struct {
	db *gorm.DB
}

// Ensure GormFlightStore implements FlightStore
var _ repository.FlightStore = (*GormFlightStore)(nil)

// NewGormFlightStore creates a new GORM flight store
func NewGormFlightStore(db *gorm.DB) *GormFlightStore {
	return &GormFlightStore{
		db: db,
	}
}

// AutoMigrate creates the Itinerary and Route tables when missing
func (s *GormFlightStore) AutoMigrate() error {
	return s.db.AutoMigrate(&ItineraryRow{}, &RouteRow{})
}

// Segments returns the segment repository view of the store
func (s *GormFlightStore) Segments() repository.SegmentRepository {
	return &gormSegmentRepository{db: s.db}
}

// Itineraries returns the itinerary repository view of the store
func (s *GormFlightStore) Itineraries() repository.ItineraryRepository {
	return &gormItineraryRepository{db: s.db}
}

// InTransaction runs fn against a transaction-scoped store. The transaction
// commits when fn returns nil and rolls back on error.
func (s *GormFlightStore) InTransaction(ctx context.Context, fn func(store repository.FlightStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormFlightStore(tx))
	})
}

// ItineraryRow GORM model for database mapping
type ItineraryRow struct {
	ImportDate                  time.Time `gorm:"column:importdate;primaryKey"`
	ID                          string    `gorm:"column:id;primaryKey"`
	FlyFrom                     string    `gorm:"column:flyFrom"`
	FlyTo                       string    `gorm:"column:flyTo"`
	CityFrom                    string    `gorm:"column:cityFrom"`
	CityCodeFrom                string    `gorm:"column:cityCodeFrom"`
	CityTo                      string    `gorm:"column:cityTo"`
	CityCodeTo                  string    `gorm:"column:cityCodeTo"`
	CountryFromCode             string    `gorm:"column:countryFromCode"`
	CountryFromName             string    `gorm:"column:countryFromName"`
	CountryToCode               string    `gorm:"column:countryToCode"`
	CountryToName               string    `gorm:"column:countryToName"`
	NightsInDest                int       `gorm:"column:nightsInDest"`
	Quality                     float64   `gorm:"column:quality"`
	Distance                    float64   `gorm:"column:distance"`
	DurationDeparture           int       `gorm:"column:durationDeparture"`
	DurationReturn              int       `gorm:"column:durationReturn"`
	DurationTotal               int       `gorm:"column:durationTotal"`
	Price                       float64   `gorm:"column:price"`
	ConversionEUR               float64   `gorm:"column:conversionEUR"`
	ConversionHUF               float64   `gorm:"column:conversionHUF"`
	AvailabilitySeats           int       `gorm:"column:availabilitySeats"`
	Airlines                    string    `gorm:"column:airlines"`
	BookingToken                string    `gorm:"column:booking_token"`
	DeepLink                    string    `gorm:"column:deep_link"`
	FacilitatedBookingAvailable bool      `gorm:"column:facilitated_booking_available"`
	PnrCount                    int       `gorm:"column:pnr_count"`
	HasAirportChange            bool      `gorm:"column:has_airport_change"`
	TechnicalStops              int       `gorm:"column:technical_stops"`
	ThrowAwayTicketing          bool      `gorm:"column:throw_away_ticketing"`
	HiddenCityTicketing         bool      `gorm:"column:hidden_city_ticketing"`
	VirtualInterlining          bool      `gorm:"column:virtual_interlining"`
	LocalArrival                time.Time `gorm:"column:local_arrival"`
	LocalDeparture              time.Time `gorm:"column:local_departure"`
}

// TableName overrides the default table name
func (ItineraryRow) TableName() string {
	return "Itinerary"
}

// RouteRow GORM model for database mapping
type RouteRow struct {
	ID                  string    `gorm:"column:id;primaryKey"`
	CombinationID       string    `gorm:"column:combination_id"`
	FlyFrom             string    `gorm:"column:flyFrom"`
	FlyTo               string    `gorm:"column:flyTo"`
	CityFrom            string    `gorm:"column:cityFrom"`
	CityCodeFrom        string    `gorm:"column:cityCodeFrom"`
	CityTo              string    `gorm:"column:cityTo"`
	CityCodeTo          string    `gorm:"column:cityCodeTo"`
	Airline             string    `gorm:"column:airline"`
	FlightNo            int       `gorm:"column:flight_no"`
	OperatingCarrier    string    `gorm:"column:operating_carrier"`
	OperatingFlightNo   string    `gorm:"column:operating_flight_no"`
	FareBasis           string    `gorm:"column:fare_basis"`
	FareCategory        string    `gorm:"column:fare_category"`
	FareClasses         string    `gorm:"column:fare_classes"`
	FareFamily          string    `gorm:"column:fare_family"`
	Return              bool      `gorm:"column:_return"`
	BagsRecheckRequired bool      `gorm:"column:bags_recheck_required"`
	VIConnection        bool      `gorm:"column:vi_connection"`
	Guarantee           bool      `gorm:"column:guarantee"`
	Equipment           string    `gorm:"column:equipment"`
	VehicleType         string    `gorm:"column:vehicle_type"`
	LocalArrival        time.Time `gorm:"column:local_arrival"`
	LocalDeparture      time.Time `gorm:"column:local_departure"`
}

// TableName overrides the default table name
func (RouteRow) TableName() string {
	return "Route"
}

type gormSegmentRepository struct {
	db *gorm.DB
}

// Exists reports whether a segment with the id was ever stored
func (r *gormSegmentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&RouteRow{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Insert writes a new segment row. The caller checks Exists first; there is
// no upsert.
func (r *gormSegmentRepository) Insert(ctx context.Context, segment *entity.Segment) error {
	row := RouteRow{
		ID:                  segment.ID,
		CombinationID:       segment.CombinationID,
		FlyFrom:             segment.FlyFrom,
		FlyTo:               segment.FlyTo,
		CityFrom:            segment.CityFrom,
		CityCodeFrom:        segment.CityCodeFrom,
		CityTo:              segment.CityTo,
		CityCodeTo:          segment.CityCodeTo,
		Airline:             segment.Airline,
		FlightNo:            segment.FlightNo,
		OperatingCarrier:    segment.OperatingCarrier,
		OperatingFlightNo:   segment.OperatingFlightNo,
		FareBasis:           segment.FareBasis,
		FareCategory:        segment.FareCategory,
		FareClasses:         segment.FareClasses,
		FareFamily:          segment.FareFamily,
		Return:              segment.Return,
		BagsRecheckRequired: segment.BagsRecheckRequired,
		VIConnection:        segment.VIConnection,
		Guarantee:           segment.Guarantee,
		Equipment:           segment.Equipment,
		VehicleType:         segment.VehicleType,
		LocalArrival:        segment.LocalArrival,
		LocalDeparture:      segment.LocalDeparture,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

type gormItineraryRepository struct {
	db *gorm.DB
}

// Exists reports whether the itinerary was already stored for the date
func (r *gormItineraryRepository) Exists(ctx context.Context, id string, importDate time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&ItineraryRow{}).
		Where("id = ? AND importdate = ?", id, importDate).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Insert writes a new itinerary row scoped to its import date
func (r *gormItineraryRepository) Insert(ctx context.Context, itinerary *entity.Itinerary) error {
	row := toItineraryRow(itinerary)
	return r.db.WithContext(ctx).Create(&row).Error
}

// LatestCheapest returns up to limit rows from the maximum import date,
// price descending. Ties break on id so the order is deterministic.
func (r *gormItineraryRepository) LatestCheapest(ctx context.Context, limit int) ([]entity.Itinerary, error) {
	sub := r.db.Model(&ItineraryRow{}).Select("max(importdate)")

	var rows []ItineraryRow
	result := r.db.WithContext(ctx).Model(&ItineraryRow{}).
		Where("importdate = (?)", sub).
		Order("price DESC").Order("id ASC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	itineraries := make([]entity.Itinerary, 0, len(rows))
	for _, row := range rows {
		itineraries = append(itineraries, toItineraryEntity(row))
	}
	return itineraries, nil
}

func toItineraryRow(it *entity.Itinerary) ItineraryRow {
	return ItineraryRow{
		ImportDate:                  it.ImportDate,
		ID:                          it.ID,
		FlyFrom:                     it.FlyFrom,
		FlyTo:                       it.FlyTo,
		CityFrom:                    it.CityFrom,
		CityCodeFrom:                it.CityCodeFrom,
		CityTo:                      it.CityTo,
		CityCodeTo:                  it.CityCodeTo,
		CountryFromCode:             it.CountryFromCode,
		CountryFromName:             it.CountryFromName,
		CountryToCode:               it.CountryToCode,
		CountryToName:               it.CountryToName,
		NightsInDest:                it.NightsInDest,
		Quality:                     it.Quality,
		Distance:                    it.Distance,
		DurationDeparture:           it.DurationDeparture,
		DurationReturn:              it.DurationReturn,
		DurationTotal:               it.DurationTotal,
		Price:                       it.Price,
		ConversionEUR:               it.ConversionEUR,
		ConversionHUF:               it.ConversionHUF,
		AvailabilitySeats:           it.AvailabilitySeats,
		Airlines:                    it.Airlines,
		BookingToken:                it.BookingToken,
		DeepLink:                    it.DeepLink,
		FacilitatedBookingAvailable: it.FacilitatedBookingAvailable,
		PnrCount:                    it.PnrCount,
		HasAirportChange:            it.HasAirportChange,
		TechnicalStops:              it.TechnicalStops,
		ThrowAwayTicketing:          it.ThrowAwayTicketing,
		HiddenCityTicketing:         it.HiddenCityTicketing,
		VirtualInterlining:          it.VirtualInterlining,
		LocalArrival:                it.LocalArrival,
		LocalDeparture:              it.LocalDeparture,
	}
}

func toItineraryEntity(row ItineraryRow) entity.Itinerary {
	return entity.Itinerary{
		ID:                          row.ID,
		ImportDate:                  row.ImportDate,
		FlyFrom:                     row.FlyFrom,
		FlyTo:                       row.FlyTo,
		CityFrom:                    row.CityFrom,
		CityCodeFrom:                row.CityCodeFrom,
		CityTo:                      row.CityTo,
		CityCodeTo:                  row.CityCodeTo,
		CountryFromCode:             row.CountryFromCode,
		CountryFromName:             row.CountryFromName,
		CountryToCode:               row.CountryToCode,
		CountryToName:               row.CountryToName,
		NightsInDest:                row.NightsInDest,
		Quality:                     row.Quality,
		Distance:                    row.Distance,
		DurationDeparture:           row.DurationDeparture,
		DurationReturn:              row.DurationReturn,
		DurationTotal:               row.DurationTotal,
		Price:                       row.Price,
		ConversionEUR:               row.ConversionEUR,
		ConversionHUF:               row.ConversionHUF,
		AvailabilitySeats:           row.AvailabilitySeats,
		Airlines:                    row.Airlines,
		BookingToken:                row.BookingToken,
		DeepLink:                    row.DeepLink,
		FacilitatedBookingAvailable: row.FacilitatedBookingAvailable,
		PnrCount:                    row.PnrCount,
		HasAirportChange:            row.HasAirportChange,
		TechnicalStops:              row.TechnicalStops,
		ThrowAwayTicketing:          row.ThrowAwayTicketing,
		HiddenCityTicketing:         row.HiddenCityTicketing,
		VirtualInterlining:          row.VirtualInterlining,
		LocalArrival:                row.LocalArrival,
		LocalDeparture:              row.LocalDeparture,
	}
}
