package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/storefront/domain"
	"github.com/tair/storefront/internal/storefront/store"
)

func seededStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.SetProducts([]domain.Product{
		{ID: 1, Title: "Gold Watch", Price: 100, Category: "jewelry"},
		{ID: 2, Title: "Silver Ring", Price: 250, Category: "jewelry"},
		{ID: 3, Title: "Desk Lamp", Price: 40, Category: "home"},
	})
	return s
}

func TestListProductsAll(t *testing.T) {
	h := NewListProductsHandler(seededStore())

	products, err := h.Handle(ListProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestListProductsLikedFilter(t *testing.T) {
	s := seededStore()
	s.ToggleLike(2)
	h := NewListProductsHandler(s)

	products, err := h.Handle(ListProductsQuery{Filter: "liked"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(2), products[0].ID)
}

func TestListProductsUsesActiveFilterByDefault(t *testing.T) {
	s := seededStore()
	s.ToggleLike(1)
	s.SetFilter(domain.FilterLiked)
	h := NewListProductsHandler(s)

	products, err := h.Handle(ListProductsQuery{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestListProductsCategoryAndSearch(t *testing.T) {
	h := NewListProductsHandler(seededStore())

	products, err := h.Handle(ListProductsQuery{Category: "Jewelry"})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = h.Handle(ListProductsQuery{Search: "watch"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Gold Watch", products[0].Title)
}

func TestListProductsRejectsUnknownFilter(t *testing.T) {
	h := NewListProductsHandler(seededStore())
	_, err := h.Handle(ListProductsQuery{Filter: "wishlist"})
	assert.Error(t, err)
}

type stubDetailFetcher struct {
	product domain.Product
	err     error
	calls   int
}

func (f *stubDetailFetcher) FetchProduct(ctx context.Context, id int64) (domain.Product, error) {
	f.calls++
	return f.product, f.err
}

func TestGetProductFromStore(t *testing.T) {
	fetcher := &stubDetailFetcher{}
	h := NewGetProductHandler(seededStore(), fetcher)

	product, err := h.Handle(context.Background(), GetProductQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Gold Watch", product.Title)
	assert.Zero(t, fetcher.calls)
}

func TestGetProductFallsBackToCatalog(t *testing.T) {
	fetcher := &stubDetailFetcher{product: domain.Product{ID: 9, Title: "Remote", Price: 5}}
	s := seededStore()
	h := NewGetProductHandler(s, fetcher)

	product, err := h.Handle(context.Background(), GetProductQuery{ID: 9})
	require.NoError(t, err)
	assert.Equal(t, "Remote", product.Title)
	assert.Equal(t, 1, fetcher.calls)

	// The fetched product is displayed, not inserted
	_, ok := s.Product(9)
	assert.False(t, ok)
}

func TestGetProductNotFound(t *testing.T) {
	fetcher := &stubDetailFetcher{err: errors.New("status 404")}
	h := NewGetProductHandler(seededStore(), fetcher)

	_, err := h.Handle(context.Background(), GetProductQuery{ID: 9})
	assert.Error(t, err)
}

func TestGetProductWithoutCatalog(t *testing.T) {
	h := NewGetProductHandler(seededStore(), nil)
	_, err := h.Handle(context.Background(), GetProductQuery{ID: 9})
	assert.Error(t, err)
}

func TestGetCartView(t *testing.T) {
	s := seededStore()
	s.AddToCart(1, 2)
	s.AddToCart(3, 1)
	s.AddToCart(77, 4) // dangling line, contributes zero
	h := NewGetCartHandler(s)

	cart, err := h.Handle(GetCartQuery{})
	require.NoError(t, err)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, 7, cart.Count)
	assert.InDelta(t, 240.0, cart.Total, 1e-9)

	assert.NotNil(t, cart.Items[0].Product)
	assert.InDelta(t, 200.0, cart.Items[0].Subtotal, 1e-9)
	assert.Nil(t, cart.Items[2].Product)
	assert.Zero(t, cart.Items[2].Subtotal)
}
