package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"
	"github.com/Dominoman/BangkokCheapTravel/pkg/metrics"
	"github.com/Dominoman/BangkokCheapTravel/pkg/utils"
)

// IngestStats exposes the per-batch counters: how many segments and
// itineraries the batch carried and how many of them were new.
type IngestStats struct {
	SegmentsSeen     int
	SegmentsAdded    int
	ItinerariesSeen  int
	ItinerariesAdded int
}

// Ingestor writes a batch of search offers through to the flight store with
// day-scoped deduplication.
type Ingestor struct {
	store    repository.FlightStore
	carriers repository.CarrierDirectory
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewIngestor creates a new ingestor. The carrier directory is an explicit
// dependency; Load it before the first batch.
func NewIngestor(
	store repository.FlightStore,
	carriers repository.CarrierDirectory,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *Ingestor {
	return &Ingestor{
		store:    store,
		carriers: carriers,
		logger:   logger,
		metrics:  metrics,
	}
}

// Ingest processes one batch of offers under importDate (normalized to
// midnight UTC) inside a single transaction. Duplicates are skipped
// silently and counted; the first malformed offer aborts the batch and
// rolls back every write made for it, in which case the returned stats are
// zero.
func (ing *Ingestor) Ingest(ctx context.Context, offers []entity.Offer, importDate time.Time) (IngestStats, error) {
	importDate = utils.DateOnly(importDate)
	started := time.Now()

	var stats IngestStats
	err := ing.store.InTransaction(ctx, func(store repository.FlightStore) error {
		for i := range offers {
			if err := ing.ingestOffer(ctx, store, &stats, &offers[i], importDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return IngestStats{}, err
	}

	if ing.metrics != nil {
		ing.metrics.SegmentsSeen.Add(float64(stats.SegmentsSeen))
		ing.metrics.SegmentsAdded.Add(float64(stats.SegmentsAdded))
		ing.metrics.ItinerariesSeen.Add(float64(stats.ItinerariesSeen))
		ing.metrics.ItinerariesAdded.Add(float64(stats.ItinerariesAdded))
		ing.metrics.IngestTime.Observe(time.Since(started).Seconds())
	}

	ing.logger.Info("Batch ingested",
		"importDate", importDate.Format("2006-01-02"),
		"itineraries", fmt.Sprintf("%d/%d", stats.ItinerariesSeen, stats.ItinerariesAdded),
		"routes", fmt.Sprintf("%d/%d", stats.SegmentsSeen, stats.SegmentsAdded))

	return stats, nil
}

func (ing *Ingestor) ingestOffer(ctx context.Context, store repository.FlightStore, stats *IngestStats, offer *entity.Offer, importDate time.Time) error {
	if offer.ID == "" {
		return fmt.Errorf("malformed offer: missing id")
	}

	for i := range offer.Route {
		if err := ing.ingestSegment(ctx, store, stats, &offer.Route[i]); err != nil {
			return fmt.Errorf("offer %s: %w", offer.ID, err)
		}
	}

	stats.ItinerariesSeen++

	exists, err := store.Itineraries().Exists(ctx, offer.ID, importDate)
	if err != nil {
		return fmt.Errorf("offer %s: existence check failed: %w", offer.ID, err)
	}
	if exists {
		ing.logger.Debug("Itinerary already stored for date", "id", offer.ID, "importDate", importDate.Format("2006-01-02"))
		return nil
	}

	itinerary, err := ing.buildItinerary(offer, importDate)
	if err != nil {
		return fmt.Errorf("offer %s: %w", offer.ID, err)
	}

	if err := store.Itineraries().Insert(ctx, itinerary); err != nil {
		return fmt.Errorf("offer %s: insert failed: %w", offer.ID, err)
	}
	stats.ItinerariesAdded++

	return nil
}

func (ing *Ingestor) ingestSegment(ctx context.Context, store repository.FlightStore, stats *IngestStats, route *entity.RouteSegment) error {
	stats.SegmentsSeen++

	if route.ID == "" {
		return fmt.Errorf("malformed route segment: missing id")
	}

	exists, err := store.Segments().Exists(ctx, route.ID)
	if err != nil {
		return fmt.Errorf("route %s: existence check failed: %w", route.ID, err)
	}
	if exists {
		return nil
	}

	segment, err := buildSegment(route)
	if err != nil {
		return err
	}

	if err := store.Segments().Insert(ctx, segment); err != nil {
		return fmt.Errorf("route %s: insert failed: %w", route.ID, err)
	}
	stats.SegmentsAdded++

	return nil
}

// resolveAirlines joins the resolved display names in provider order.
// Unknown codes resolve to "" and keep their slot.
func (ing *Ingestor) resolveAirlines(codes []string) string {
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = ing.carriers.Resolve(code)
	}
	return strings.Join(names, ",")
}

func (ing *Ingestor) buildItinerary(offer *entity.Offer, importDate time.Time) (*entity.Itinerary, error) {
	localArrival, err := utils.ParseLocalTime(offer.LocalArrival)
	if err != nil {
		return nil, err
	}
	localDeparture, err := utils.ParseLocalTime(offer.LocalDeparture)
	if err != nil {
		return nil, err
	}

	return &entity.Itinerary{
		ID:                          offer.ID,
		ImportDate:                  importDate,
		FlyFrom:                     offer.FlyFrom,
		FlyTo:                       offer.FlyTo,
		CityFrom:                    offer.CityFrom,
		CityCodeFrom:                offer.CityCodeFrom,
		CityTo:                      offer.CityTo,
		CityCodeTo:                  offer.CityCodeTo,
		CountryFromCode:             offer.CountryFrom.Code,
		CountryFromName:             offer.CountryFrom.Name,
		CountryToCode:               offer.CountryTo.Code,
		CountryToName:               offer.CountryTo.Name,
		NightsInDest:                offer.NightsInDest,
		Quality:                     offer.Quality,
		Distance:                    offer.Distance,
		DurationDeparture:           offer.Duration.Departure,
		DurationReturn:              offer.Duration.Return,
		DurationTotal:               offer.Duration.Total,
		Price:                       offer.Price,
		ConversionEUR:               offer.Conversion["EUR"],
		ConversionHUF:               offer.Conversion["HUF"],
		AvailabilitySeats:           offer.Availability.Seats,
		Airlines:                    ing.resolveAirlines(offer.Airlines),
		BookingToken:                offer.BookingToken,
		DeepLink:                    offer.DeepLink,
		FacilitatedBookingAvailable: offer.FacilitatedBookingAvailable,
		PnrCount:                    offer.PnrCount,
		HasAirportChange:            offer.HasAirportChange,
		TechnicalStops:              offer.TechnicalStops,
		ThrowAwayTicketing:          offer.ThrowAwayTicketing,
		HiddenCityTicketing:         offer.HiddenCityTicketing,
		VirtualInterlining:          offer.VirtualInterlining,
		LocalArrival:                localArrival,
		LocalDeparture:              localDeparture,
	}, nil
}

func buildSegment(route *entity.RouteSegment) (*entity.Segment, error) {
	localArrival, err := utils.ParseLocalTime(route.LocalArrival)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", route.ID, err)
	}
	localDeparture, err := utils.ParseLocalTime(route.LocalDeparture)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", route.ID, err)
	}

	return &entity.Segment{
		ID:                  route.ID,
		CombinationID:       route.CombinationID,
		FlyFrom:             route.FlyFrom,
		FlyTo:               route.FlyTo,
		CityFrom:            route.CityFrom,
		CityCodeFrom:        route.CityCodeFrom,
		CityTo:              route.CityTo,
		CityCodeTo:          route.CityCodeTo,
		Airline:             route.Airline,
		FlightNo:            route.FlightNo,
		OperatingCarrier:    route.OperatingCarrier,
		OperatingFlightNo:   route.OperatingFlightNo,
		FareBasis:           route.FareBasis,
		FareCategory:        route.FareCategory,
		FareClasses:         route.FareClasses,
		FareFamily:          route.FareFamily,
		Return:              route.Return != 0,
		BagsRecheckRequired: route.BagsRecheckRequired,
		VIConnection:        route.VIConnection,
		Guarantee:           route.Guarantee,
		Equipment:           route.Equipment,
		VehicleType:         route.VehicleType,
		LocalArrival:        localArrival,
		LocalDeparture:      localDeparture,
	}, nil
}
