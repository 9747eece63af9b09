package repository

import (
	"context"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
)

// SegmentRepository defines the interface for flight segment storage.
// Segments are write-once: Insert expects the caller to have checked Exists
// first, and no update or delete is exposed.
type SegmentRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, segment *entity.Segment) error
}
