package store

import (
	"context"
	"encoding/json"

	"github.com/tair/storefront/internal/storage"
	"github.com/tair/storefront/internal/storefront/domain"
	"github.com/tair/storefront/pkg/logger"
)

// SnapshotKey is the storage key holding the serialized store state
const SnapshotKey = "product-storage"

// Persister mirrors every committed store mutation into durable storage.
// Writes are best-effort: failures are logged and swallowed, never retried.
type Persister struct {
	storage storage.Storage
}

// NewPersister creates a persister backed by the given storage
func NewPersister(st storage.Storage) *Persister {
	return &Persister{storage: st}
}

// Attach registers the persister on the store. Call exactly once, after
// Restore, so the restored state is not immediately echoed back.
func (p *Persister) Attach(s *MemoryStore) {
	s.Subscribe(p.save)
}

func (p *Persister) save(snap domain.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to serialize state snapshot")
		return
	}

	if err := p.storage.Set(context.Background(), SnapshotKey, string(data)); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to persist state snapshot")
	}
}

// Restore hydrates the store from storage. An absent key or a payload that
// does not decode leaves the store at its empty defaults; a decodable
// payload with missing fields defaults each field independently.
func (p *Persister) Restore(ctx context.Context, s *MemoryStore) {
	raw, err := p.storage.Get(ctx, SnapshotKey)
	if err == storage.ErrNotFound {
		return
	}
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to read persisted state")
		return
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		logger.Logger.Warn().Err(err).Msg("Ignoring malformed persisted state")
		return
	}

	s.Restore(snap)

	logger.Logger.Info().
		Int("products", len(snap.Products)).
		Int("liked", len(snap.LikedProducts)).
		Int("cart_items", len(snap.CartItems)).
		Msg("State restored from storage")
}
