package repository

import (
	"context"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
)

// SearchArchiveRepository stores raw search responses for later inspection.
type SearchArchiveRepository interface {
	Save(ctx context.Context, log *entity.SearchLog) error
}
