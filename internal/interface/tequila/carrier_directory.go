package tequila

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const carriersCacheKey = "carriers"

// CachedCarrierDirectory implements the CarrierDirectory interface over the
// public carriers endpoint. The list is fetched at most once per TTL and
// held in memory for the directory's lifetime.
type CachedCarrierDirectory struct {
	httpClient *http.Client
	url        string
	cache      *cache.Cache
	logger     logger.Logger
}

// Ensure CachedCarrierDirectory implements CarrierDirectory
var _ repository.CarrierDirectory = (*CachedCarrierDirectory)(nil)

// NewCachedCarrierDirectory creates a new carrier directory
func NewCachedCarrierDirectory(url string, ttl time.Duration, logger logger.Logger) *CachedCarrierDirectory {
	return &CachedCarrierDirectory{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
		cache:      cache.New(ttl, 2*ttl),
		logger:     logger,
	}
}

// Load fetches the carrier list unless a fresh copy is already cached
func (d *CachedCarrierDirectory) Load(ctx context.Context) error {
	if _, found := d.cache.Get(carriersCacheKey); found {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return fmt.Errorf("failed to create carriers request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("carriers request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("carriers returned status %d: %s", resp.StatusCode, string(body))
	}

	var carriers []entity.Carrier
	if err := json.NewDecoder(resp.Body).Decode(&carriers); err != nil {
		return fmt.Errorf("failed to decode carriers: %w", err)
	}

	byID := make(map[string]string, len(carriers))
	for _, carrier := range carriers {
		byID[carrier.ID] = carrier.Name
	}
	d.cache.Set(carriersCacheKey, byID, cache.DefaultExpiration)

	d.logger.Info("Carrier directory loaded", "carriers", len(carriers))

	return nil
}

// Resolve returns the display name for a carrier code. Unknown codes and an
// unloaded directory both resolve to "".
func (d *CachedCarrierDirectory) Resolve(id string) string {
	value, found := d.cache.Get(carriersCacheKey)
	if !found {
		return ""
	}
	return value.(map[string]string)[id]
}
