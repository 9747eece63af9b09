package repository

import (
	"context"
)

// CarrierDirectory resolves carrier codes to display names from reference
// data loaded once per run.
type CarrierDirectory interface {
	// Load fetches the carrier list. Calling it again while the cached
	// copy is still fresh is a no-op.
	Load(ctx context.Context) error

	// Resolve returns the display name for a carrier code, or "" when the
	// code is unknown. A miss is never an error.
	Resolve(id string) string
}
