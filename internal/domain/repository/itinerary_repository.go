package repository

import (
	"context"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
)

// ItineraryRepository defines the interface for itinerary storage. Rows are
// scoped to an import date: the same itinerary id on a different date is a
// distinct row.
type ItineraryRepository interface {
	Exists(ctx context.Context, id string, importDate time.Time) (bool, error)
	Insert(ctx context.Context, itinerary *entity.Itinerary) error

	// LatestCheapest returns up to limit itineraries from the most recent
	// import date present, ordered by descending price. An empty store
	// yields an empty slice.
	LatestCheapest(ctx context.Context, limit int) ([]entity.Itinerary, error)
}
