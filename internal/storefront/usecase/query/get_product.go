package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// ProductFetcher fetches a single product from the remote catalog
type ProductFetcher interface {
	FetchProduct(ctx context.Context, id int64) (domain.Product, error)
}

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID int64
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	store   domain.ProductStore
	catalog ProductFetcher
}

// NewGetProductHandler creates a new get product handler. The catalog
// fetcher is optional; without it absence in the store is final.
func NewGetProductHandler(store domain.ProductStore, catalog ProductFetcher) *GetProductHandler {
	return &GetProductHandler{store: store, catalog: catalog}
}

// Handle executes the get product query, falling back to the remote
// catalog when the id is not in memory. Fetched products are displayed,
// not inserted: the store stays the owner of its collection.
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (domain.Product, error) {
	if q.ID < 0 {
		return domain.Product{}, fmt.Errorf("invalid product id")
	}

	if product, ok := h.store.Product(q.ID); ok {
		return product, nil
	}

	if h.catalog == nil {
		return domain.Product{}, fmt.Errorf("product not found")
	}

	product, err := h.catalog.FetchProduct(ctx, q.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product not found: %w", err)
	}

	return product, nil
}
