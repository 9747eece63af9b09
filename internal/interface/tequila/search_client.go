package tequila

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"
)

// SearchClient queries the Tequila /v2/search endpoint for round-trip
// offers.
type SearchClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Logger
}

// NewSearchClient creates a new search client
func NewSearchClient(baseURL, apiKey string, logger logger.Logger) *SearchClient {
	return &SearchClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// SearchQuery holds the round-trip search parameters
type SearchQuery struct {
	FlyFrom         string
	FlyTo           string
	DateFrom        string
	DateTo          string
	NightsInDstFrom int
	NightsInDstTo   int
	MaxFlyDuration  int
	MaxStopovers    int
	Limit           int
	Currency        string
	Locale          string
}

// SearchResult carries the decoded response together with the raw exchange
// for archiving.
type SearchResult struct {
	Response   *entity.SearchResponse
	RawBody    []byte
	RequestURL string
	StatusCode int
}

// Search performs one search call. A non-2xx status is returned as an error
// together with the partial result so the caller can still archive the
// exchange; the batch is not ingested in that case.
func (c *SearchClient) Search(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	requestURL := c.buildURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	c.logger.Info("Querying search provider", "url", requestURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	result := &SearchResult{
		RawBody:    body,
		RequestURL: requestURL,
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("search returned status %d: %s", resp.StatusCode, string(body))
	}

	var searchResponse entity.SearchResponse
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return result, fmt.Errorf("failed to decode search response: %w", err)
	}
	result.Response = &searchResponse

	c.logger.Info("Search completed", "offers", len(searchResponse.Data))

	return result, nil
}

func (c *SearchClient) buildURL(query SearchQuery) string {
	params := url.Values{}
	params.Set("fly_from", query.FlyFrom)
	params.Set("fly_to", query.FlyTo)
	params.Set("date_from", query.DateFrom)
	params.Set("date_to", query.DateTo)
	params.Set("nights_in_dst_from", strconv.Itoa(query.NightsInDstFrom))
	params.Set("nights_in_dst_to", strconv.Itoa(query.NightsInDstTo))
	params.Set("max_fly_duration", strconv.Itoa(query.MaxFlyDuration))
	params.Set("flight_type", "round")
	params.Set("curr", query.Currency)
	params.Set("locale", query.Locale)
	params.Set("max_stopovers", strconv.Itoa(query.MaxStopovers))
	params.Set("limit", strconv.Itoa(query.Limit))
	return c.baseURL + "?" + params.Encode()
}
