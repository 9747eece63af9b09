package repository

import (
	"context"
)

// FlightStore bundles the segment and itinerary repositories backed by one
// database and scopes them into a shared transaction.
type FlightStore interface {
	Segments() SegmentRepository
	Itineraries() ItineraryRepository

	// InTransaction runs fn against a store whose repositories share one
	// transaction. The transaction commits when fn returns nil and rolls
	// back on error, discarding every write fn made.
	InTransaction(ctx context.Context, fn func(store FlightStore) error) error
}
