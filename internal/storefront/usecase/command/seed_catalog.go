package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// ProductFetcher fetches the remote product collection
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

// SeedCatalogCommand represents the command to seed the store from the
// remote catalog
type SeedCatalogCommand struct{}

// SeedCatalogHandler handles the catalog seed command
type SeedCatalogHandler struct {
	fetcher ProductFetcher
	store   domain.ProductStore
}

// NewSeedCatalogHandler creates a new seed catalog handler
func NewSeedCatalogHandler(fetcher ProductFetcher, store domain.ProductStore) *SeedCatalogHandler {
	return &SeedCatalogHandler{fetcher: fetcher, store: store}
}

// Handle executes the catalog seed command. Seeding only applies to an
// empty collection; a populated store makes this a no-op and the remote
// catalog is not contacted at all. Returns whether the seed was applied.
func (h *SeedCatalogHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) (bool, error) {
	if len(h.store.Products()) > 0 {
		return false, nil
	}

	products, err := h.fetcher.FetchProducts(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to seed catalog: %w", err)
	}

	h.store.SetProducts(products)
	return len(products) > 0, nil
}
