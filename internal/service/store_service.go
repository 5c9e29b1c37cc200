package service

import (
	"context"

	"storefront-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// SoftStore implements ports.KeyValueStore over a KVBackend. Backend errors
// never cross this boundary: they are logged and reported as false.
type SoftStore struct {
	backend ports.KVBackend
	log     zerolog.Logger
}

// NewSoftStore wraps backend with fail-soft semantics.
func NewSoftStore(backend ports.KVBackend, log zerolog.Logger) *SoftStore {
	return &SoftStore{backend: backend, log: log}
}

// Get returns ("", false) for both a missing key and a read failure.
func (s *SoftStore) Get(ctx context.Context, key string) (string, bool) {
	v, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("store read failed")
		return "", false
	}
	if v == nil {
		return "", false
	}
	return string(v), true
}

// Set reports whether value was written.
func (s *SoftStore) Set(ctx context.Context, key, value string) bool {
	if err := s.backend.Set(ctx, key, []byte(value)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("store write failed")
		return false
	}
	return true
}

// Remove reports whether key is gone. Removing a missing key succeeds.
func (s *SoftStore) Remove(ctx context.Context, key string) bool {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("store remove failed")
		return false
	}
	return true
}
