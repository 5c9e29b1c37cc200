package ports

import "context"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// KVBackend is a durable key-value backend. Get returns (nil, nil) when the
// key does not exist.
type KVBackend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// KeyValueStore is the fail-soft store the account repository persists
// through. It never returns errors: failures are logged by the
// implementation and reported as false.
type KeyValueStore interface {
	// Get returns the value and true, or "" and false if the key is
	// missing or could not be read.
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) bool
	Remove(ctx context.Context, key string) bool
}
