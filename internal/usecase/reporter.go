package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"
	"github.com/Dominoman/BangkokCheapTravel/templates"
)

// PriceReport is the rendered latest-snapshot report.
type PriceReport struct {
	Subject  string
	HTMLBody string
	RowCount int
}

// Reporter renders the cheapest itineraries of the most recent import date.
// Pure read: it never mutates the store and never fails on an empty one.
type Reporter struct {
	store    repository.FlightStore
	currency string
	logger   logger.Logger
}

// NewReporter creates a new reporter. currency labels the price column and
// matches the search currency.
func NewReporter(store repository.FlightStore, currency string, logger logger.Logger) *Reporter {
	return &Reporter{
		store:    store,
		currency: currency,
		logger:   logger,
	}
}

// Report builds the report for up to limit itineraries from the latest
// import date, ordered by descending price.
func (r *Reporter) Report(ctx context.Context, limit int) (*PriceReport, error) {
	itineraries, err := r.store.Itineraries().LatestCheapest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("latest cheapest query failed: %w", err)
	}

	data := templates.PriceReportData{
		QueryDate: time.Now().Format("2006-01-02"),
		Currency:  r.currency,
		Rows:      make([]templates.PriceReportRow, 0, len(itineraries)),
	}
	for _, it := range itineraries {
		data.Rows = append(data.Rows, templates.PriceReportRow{
			ID:        it.ID,
			Route:     fmt.Sprintf("%s (%s) - %s (%s)", it.CityFrom, it.FlyFrom, it.CityTo, it.FlyTo),
			Airlines:  it.Airlines,
			Nights:    it.NightsInDest,
			Price:     it.Price,
			PriceEUR:  it.ConversionEUR,
			Departure: it.LocalDeparture.Format("2006-01-02 15:04"),
			Arrival:   it.LocalArrival.Format("2006-01-02 15:04"),
			DeepLink:  it.DeepLink,
		})
	}

	html, err := templates.RenderPriceReport(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	r.logger.Info("Price report built", "rows", len(data.Rows))

	return &PriceReport{
		Subject:  fmt.Sprintf("Cheapest flights %s", data.QueryDate),
		HTMLBody: html,
		RowCount: len(data.Rows),
	}, nil
}
