package repository

import (
	"context"

	"github.com/sony/gobreaker/v2"
)

// BreakerStoreImpl guards a remote KeyValueStore with a circuit breaker. While
// the breaker is open calls fail fast and the caller falls back to seed data.
type BreakerStoreImpl struct {
	next KeyValueStore
	cb   *gobreaker.CircuitBreaker[[]byte]
}

func CreateNewBreakerStore(next KeyValueStore, cb *gobreaker.CircuitBreaker[[]byte]) *BreakerStoreImpl {
	return &BreakerStoreImpl{next: next, cb: cb}
}

func (r *BreakerStoreImpl) Get(ctx context.Context, key string) ([]byte, error) {
	return r.cb.Execute(func() ([]byte, error) {
		return r.next.Get(ctx, key)
	})
}

func (r *BreakerStoreImpl) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.cb.Execute(func() ([]byte, error) {
		return nil, r.next.Set(ctx, key, value)
	})
	return err
}

func (r *BreakerStoreImpl) Close(ctx context.Context) error {
	return r.next.Close(ctx)
}
