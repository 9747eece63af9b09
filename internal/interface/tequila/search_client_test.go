package tequila

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"

	"github.com/stretchr/testify/require"
)

func testQuery() SearchQuery {
	return SearchQuery{
		FlyFrom:         "VIE,BUD",
		FlyTo:           "BKK",
		DateFrom:        "26/12/2023",
		DateTo:          "31/12/2023",
		NightsInDstFrom: 7,
		NightsInDstTo:   14,
		MaxFlyDuration:  15,
		MaxStopovers:    1,
		Limit:           1000,
		Currency:        "HUF",
		Locale:          "hu",
	}
}

func TestSearchClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret-key", r.Header.Get("apikey"))

		q := r.URL.Query()
		require.Equal(t, "VIE,BUD", q.Get("fly_from"))
		require.Equal(t, "BKK", q.Get("fly_to"))
		require.Equal(t, "round", q.Get("flight_type"))
		require.Equal(t, "7", q.Get("nights_in_dst_from"))
		require.Equal(t, "14", q.Get("nights_in_dst_to"))
		require.Equal(t, "1", q.Get("max_stopovers"))
		require.Equal(t, "HUF", q.Get("curr"))

		w.Write([]byte(`{"currency":"HUF","data":[{"id":"offer-1","flyFrom":"VIE","flyTo":"BKK","price":185000,"route":[{"id":"seg-1","return":0}]}]}`))
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "secret-key", logger.NewNopLogger())

	result, err := client.Search(context.Background(), testQuery())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, result.StatusCode)
	require.NotNil(t, result.Response)
	require.Len(t, result.Response.Data, 1)

	offer := result.Response.Data[0]
	require.Equal(t, "offer-1", offer.ID)
	require.Equal(t, float64(185000), offer.Price)
	require.Len(t, offer.Route, 1)
	require.Equal(t, "seg-1", offer.Route[0].ID)
}

func TestSearchClient_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid apikey"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "wrong-key", logger.NewNopLogger())

	result, err := client.Search(context.Background(), testQuery())
	require.Error(t, err)

	// The raw exchange is still returned for archiving
	require.NotNil(t, result)
	require.Equal(t, http.StatusUnauthorized, result.StatusCode)
	require.Nil(t, result.Response)
	require.Contains(t, string(result.RawBody), "invalid apikey")
}
