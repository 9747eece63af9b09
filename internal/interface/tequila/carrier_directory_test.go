package tequila

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestCachedCarrierDirectory_LoadAndResolve(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`[{"id":"FR","name":"Ryanair"},{"id":"EK","name":"Emirates"}]`))
	}))
	defer server.Close()

	directory := NewCachedCarrierDirectory(server.URL, time.Hour, logger.NewNopLogger())
	ctx := context.Background()

	// Resolving before Load is a miss, not an error
	require.Equal(t, "", directory.Resolve("FR"))

	require.NoError(t, directory.Load(ctx))
	require.Equal(t, "Ryanair", directory.Resolve("FR"))
	require.Equal(t, "Emirates", directory.Resolve("EK"))

	// Unknown codes resolve to the empty string
	require.Equal(t, "", directory.Resolve("XX"))

	// A second Load within the TTL is served from the cache
	require.NoError(t, directory.Load(ctx))
	require.Equal(t, 1, requests)
}

func TestCachedCarrierDirectory_LoadErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	directory := NewCachedCarrierDirectory(server.URL, time.Hour, logger.NewNopLogger())

	err := directory.Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")

	// Still resolves to empty after a failed load
	require.Equal(t, "", directory.Resolve("FR"))
}
