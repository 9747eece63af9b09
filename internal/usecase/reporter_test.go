package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestReporter_EmptyStoreRendersEmptyReport(t *testing.T) {
	_, store := setupIngestor(t)

	reporter := NewReporter(store, "HUF", logger.NewNopLogger())

	report, err := reporter.Report(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 0, report.RowCount)
	require.Contains(t, report.HTMLBody, "No itineraries stored yet.")
}

func TestReporter_RendersLatestSnapshot(t *testing.T) {
	ing, store := setupIngestor(t)
	ctx := context.Background()

	offers := []entity.Offer{
		makeOffer("it-1", 100, "s1"),
		makeOffer("it-2", 300, "s2"),
		makeOffer("it-3", 200, "s3"),
	}
	_, err := ing.Ingest(ctx, offers, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	reporter := NewReporter(store, "HUF", logger.NewNopLogger())

	report, err := reporter.Report(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, report.RowCount)
	require.Contains(t, report.Subject, "Cheapest flights")
	require.Contains(t, report.HTMLBody, "it-2")
	require.Contains(t, report.HTMLBody, "it-3")
	require.NotContains(t, report.HTMLBody, "it-1")
	require.Contains(t, report.HTMLBody, "Vienna (VIE) - Bangkok (BKK)")
	require.Contains(t, report.HTMLBody, "Price (HUF)")
}
