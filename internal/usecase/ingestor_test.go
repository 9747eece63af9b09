package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	storeRepo "github.com/Dominoman/BangkokCheapTravel/internal/interface/repository"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Static carrier directory for tests
type staticDirectory struct {
	names map[string]string
}

func (d *staticDirectory) Load(ctx context.Context) error {
	return nil
}

func (d *staticDirectory) Resolve(id string) string {
	return d.names[id]
}

func setupIngestor(t *testing.T) (*Ingestor, *storeRepo.GormFlightStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	store := storeRepo.NewGormFlightStore(db)
	if err := store.AutoMigrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	directory := &staticDirectory{names: map[string]string{
		"EK": "Emirates",
		"FR": "Ryanair",
	}}

	return NewIngestor(store, directory, logger.NewNopLogger(), nil), store
}

func makeRouteSegment(id string) entity.RouteSegment {
	return entity.RouteSegment{
		ID:             id,
		CombinationID:  "combo-" + id,
		FlyFrom:        "VIE",
		FlyTo:          "BKK",
		Airline:        "EK",
		FlightNo:       128,
		LocalDeparture: "2024-05-01T10:30:00.000Z",
		LocalArrival:   "2024-05-02T06:15:00.000Z",
	}
}

func makeOffer(id string, price float64, segmentIDs ...string) entity.Offer {
	route := make([]entity.RouteSegment, 0, len(segmentIDs))
	for _, segID := range segmentIDs {
		route = append(route, makeRouteSegment(segID))
	}

	return entity.Offer{
		ID:             id,
		FlyFrom:        "VIE",
		FlyTo:          "BKK",
		CityFrom:       "Vienna",
		CityTo:         "Bangkok",
		NightsInDest:   10,
		Price:          price,
		Conversion:     map[string]float64{"EUR": price / 400, "HUF": price},
		Airlines:       []string{"EK"},
		LocalDeparture: "2024-05-01T10:30:00.000Z",
		LocalArrival:   "2024-05-16T18:00:00.000Z",
		Route:          route,
	}
}

func TestIngestor_ScenarioAcrossImportDates(t *testing.T) {
	ing, store := setupIngestor(t)
	ctx := context.Background()

	offers := []entity.Offer{
		makeOffer("it-1", 100, "s1", "s2"),
		makeOffer("it-2", 300, "s3", "s4"),
		makeOffer("it-3", 200, "s5", "s6"),
	}

	d1 := time.Date(2024, 4, 1, 14, 30, 0, 0, time.UTC)

	// Fresh batch on D1: everything is new
	stats, err := ing.Ingest(ctx, offers, d1)
	require.NoError(t, err)
	require.Equal(t, 6, stats.SegmentsSeen)
	require.Equal(t, 6, stats.SegmentsAdded)
	require.Equal(t, 3, stats.ItinerariesSeen)
	require.Equal(t, 3, stats.ItinerariesAdded)

	// Identical batch on D1 again: everything already stored
	stats, err = ing.Ingest(ctx, offers, d1)
	require.NoError(t, err)
	require.Equal(t, 6, stats.SegmentsSeen)
	require.Equal(t, 0, stats.SegmentsAdded)
	require.Equal(t, 3, stats.ItinerariesSeen)
	require.Equal(t, 0, stats.ItinerariesAdded)

	// Same offers on D2: segments are date-independent, itineraries are not
	d2 := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	stats, err = ing.Ingest(ctx, offers, d2)
	require.NoError(t, err)
	require.Equal(t, 0, stats.SegmentsAdded)
	require.Equal(t, 3, stats.ItinerariesAdded)

	// The snapshot covers D2 only, price descending
	rows, err := store.Itineraries().LatestCheapest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "it-2", rows[0].ID)
	require.Equal(t, "it-3", rows[1].ID)
	require.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), rows[0].ImportDate.UTC())
}

func TestIngestor_ImportDateNormalizedToDay(t *testing.T) {
	ing, store := setupIngestor(t)
	ctx := context.Background()

	morning := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 4, 1, 20, 45, 0, 0, time.UTC)

	offers := []entity.Offer{makeOffer("it-1", 100, "s1")}

	stats, err := ing.Ingest(ctx, offers, morning)
	require.NoError(t, err)
	require.Equal(t, 1, stats.ItinerariesAdded)

	// Same calendar day, different time of day: still a duplicate
	stats, err = ing.Ingest(ctx, offers, evening)
	require.NoError(t, err)
	require.Equal(t, 0, stats.ItinerariesAdded)

	rows, err := store.Itineraries().LatestCheapest(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestIngestor_ResolvesAirlinesInProviderOrder(t *testing.T) {
	ing, store := setupIngestor(t)
	ctx := context.Background()

	offer := makeOffer("it-1", 100, "s1")
	offer.Airlines = []string{"FR", "XX", "EK"}

	_, err := ing.Ingest(ctx, []entity.Offer{offer}, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rows, err := store.Itineraries().LatestCheapest(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Unknown carriers resolve to an empty name but keep their slot
	require.Equal(t, "Ryanair,,Emirates", rows[0].Airlines)
}

func TestIngestor_MalformedOfferRollsBackBatch(t *testing.T) {
	ing, store := setupIngestor(t)
	ctx := context.Background()

	bad := makeOffer("it-2", 200, "s3")
	bad.LocalDeparture = "not-a-timestamp"

	offers := []entity.Offer{
		makeOffer("it-1", 100, "s1", "s2"),
		bad,
		makeOffer("it-3", 300, "s4"),
	}

	stats, err := ing.Ingest(ctx, offers, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	require.Equal(t, IngestStats{}, stats)

	// The valid first offer was discarded with the batch
	exists, err := store.Segments().Exists(ctx, "s1")
	require.NoError(t, err)
	require.False(t, exists)

	rows, err := store.Itineraries().LatestCheapest(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestIngestor_MissingOfferIDFailsBatch(t *testing.T) {
	ing, _ := setupIngestor(t)

	offer := makeOffer("", 100, "s1")

	_, err := ing.Ingest(context.Background(), []entity.Offer{offer}, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing id")
}

func TestIngestor_SharedSegmentsStoredOnce(t *testing.T) {
	ing, store := setupIngestor(t)
	ctx := context.Background()

	// Two offers sharing one physical leg
	offers := []entity.Offer{
		makeOffer("it-1", 100, "shared", "s1"),
		makeOffer("it-2", 200, "shared", "s2"),
	}

	stats, err := ing.Ingest(ctx, offers, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 4, stats.SegmentsSeen)
	require.Equal(t, 3, stats.SegmentsAdded)

	exists, err := store.Segments().Exists(ctx, "shared")
	require.NoError(t, err)
	require.True(t, exists)
}
