package repository

import (
	"context"

	"github.com/Ihsas01/SR-SHOPPING/internal/state"
)

// KeyValueStore is the backing store the storefront snapshots into. Get
// returns nil, nil for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close(ctx context.Context) error
}

// StateRepository loads the storefront state and persists committed changes.
// Neither method reports storage failures to the caller.
type StateRepository interface {
	LoadState(ctx context.Context) state.State
	Persist(ctx context.Context, snapshot state.State, change state.Change)
}
