package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/storefront/domain"
)

func watch() domain.Product {
	return domain.Product{ID: 1, Title: "Watch", Price: 100, Category: "jewelry", Image: "https://example.com/watch.jpg"}
}

func ring() domain.Product {
	return domain.Product{ID: 2, Title: "Ring", Price: 250, Category: "jewelry", Image: "https://example.com/ring.jpg"}
}

func TestSetProductsSeedsOnlyEmptyStore(t *testing.T) {
	s := NewMemoryStore()

	s.SetProducts([]domain.Product{watch()})
	require.Len(t, s.Products(), 1)
	assert.Equal(t, int64(1), s.Products()[0].ID)

	// A later fetch must never clobber the populated collection
	s.SetProducts([]domain.Product{ring()})
	require.Len(t, s.Products(), 1)
	assert.Equal(t, int64(1), s.Products()[0].ID)
}

func TestSetProductsIgnoresEmptyList(t *testing.T) {
	s := NewMemoryStore()
	s.SetProducts(nil)
	assert.Empty(t, s.Products())
}

func TestAddProductAssignsMonotonicIDs(t *testing.T) {
	s := NewMemoryStore()
	tick := time.UnixMilli(1700000000000)
	s.now = func() time.Time { return tick }

	first := s.AddProduct(domain.Product{Title: "Lamp", Price: 30})
	second := s.AddProduct(domain.Product{Title: "Vase", Price: 40})

	assert.Equal(t, int64(1700000000000), first.ID)
	// Same clock tick: the in-process bump keeps ids unique
	assert.Equal(t, int64(1700000000001), second.ID)
	assert.Len(t, s.Products(), 2)
}

func TestAddProductIgnoresCallerID(t *testing.T) {
	s := NewMemoryStore()
	created := s.AddProduct(domain.Product{ID: 42, Title: "Lamp", Price: 30})
	assert.NotEqual(t, int64(42), created.ID)
}

func TestRemoveProductCascades(t *testing.T) {
	s := NewMemoryStore()
	s.SetProducts([]domain.Product{watch(), ring()})
	s.ToggleLike(1)
	s.ToggleLike(2)
	s.AddToCart(1, 1)
	s.AddToCart(2, 3)

	s.RemoveProduct(1)

	_, ok := s.Product(1)
	assert.False(t, ok)
	assert.Equal(t, []int64{2}, s.LikedProducts())
	require.Len(t, s.CartItems(), 1)
	assert.Equal(t, int64(2), s.CartItems()[0].ProductID)
}

func TestRemoveProductAbsentIsNoop(t *testing.T) {
	s := NewMemoryStore()
	s.SetProducts([]domain.Product{watch()})
	s.RemoveProduct(99)
	assert.Len(t, s.Products(), 1)
}

func TestToggleLikeDoubleApplicationRestoresState(t *testing.T) {
	s := NewMemoryStore()

	assert.True(t, s.ToggleLike(1))
	assert.Equal(t, []int64{1}, s.LikedProducts())

	assert.False(t, s.ToggleLike(1))
	assert.Empty(t, s.LikedProducts())
}

func TestAddToCartMergesLines(t *testing.T) {
	s := NewMemoryStore()

	s.AddToCart(1, 1)
	s.AddToCart(1, 2)

	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, domain.CartItem{ProductID: 1, Quantity: 3}, items[0])
	assert.Equal(t, 3, s.CartItemCount())
}

func TestAddToCartQuantityDefaultsToOne(t *testing.T) {
	s := NewMemoryStore()
	s.AddToCart(1, 0)
	s.AddToCart(2, -5)

	items := s.CartItems()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestUpdateCartItemQuantityClampsToOne(t *testing.T) {
	s := NewMemoryStore()
	s.AddToCart(1, 5)

	s.UpdateCartItemQuantity(1, 0)
	assert.Equal(t, 1, s.CartItems()[0].Quantity)

	s.UpdateCartItemQuantity(1, -3)
	assert.Equal(t, 1, s.CartItems()[0].Quantity)

	s.UpdateCartItemQuantity(1, 7)
	assert.Equal(t, 7, s.CartItems()[0].Quantity)
}

func TestUpdateCartItemQuantityAbsentIsNoop(t *testing.T) {
	s := NewMemoryStore()
	s.UpdateCartItemQuantity(1, 4)
	assert.Empty(t, s.CartItems())
}

func TestRemoveFromCartAndClear(t *testing.T) {
	s := NewMemoryStore()
	s.AddToCart(1, 1)
	s.AddToCart(2, 2)

	s.RemoveFromCart(1)
	require.Len(t, s.CartItems(), 1)

	s.RemoveFromCart(99)
	require.Len(t, s.CartItems(), 1)

	s.ClearCart()
	assert.Empty(t, s.CartItems())
	assert.Equal(t, 0, s.CartItemCount())
}

func TestCartTotalSkipsDanglingLines(t *testing.T) {
	s := NewMemoryStore()
	s.SetProducts([]domain.Product{watch(), ring()})
	s.AddToCart(1, 2)
	s.AddToCart(2, 1)

	assert.InDelta(t, 450.0, s.CartTotal(), 1e-9)

	// Bypass the cascade by adding a line for a product that never existed
	s.AddToCart(77, 3)
	assert.InDelta(t, 450.0, s.CartTotal(), 1e-9)
}

func TestRemoveProductEmptiesCartTotal(t *testing.T) {
	s := NewMemoryStore()
	s.SetProducts([]domain.Product{watch()})
	s.AddToCart(1, 1)

	s.RemoveProduct(1)

	assert.Empty(t, s.CartItems())
	assert.Zero(t, s.CartTotal())
}

func TestUpdateProductMergesPatch(t *testing.T) {
	s := NewMemoryStore()
	s.SetProducts([]domain.Product{watch()})

	title := "Gold Watch"
	price := 150.0
	updated, ok := s.UpdateProduct(1, domain.ProductPatch{Title: &title, Price: &price})
	require.True(t, ok)

	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Gold Watch", updated.Title)
	assert.Equal(t, 150.0, updated.Price)
	// Untouched fields survive the merge
	assert.Equal(t, "jewelry", updated.Category)
	assert.Equal(t, "https://example.com/watch.jpg", updated.Image)
}

func TestUpdateProductAbsentIsNoop(t *testing.T) {
	s := NewMemoryStore()
	title := "Anything"
	_, ok := s.UpdateProduct(5, domain.ProductPatch{Title: &title})
	assert.False(t, ok)
}

func TestSetFilter(t *testing.T) {
	s := NewMemoryStore()
	assert.Equal(t, domain.FilterAll, s.Filter())

	notifications := 0
	s.Subscribe(func(domain.Snapshot) { notifications++ })

	s.SetFilter(domain.FilterLiked)
	assert.Equal(t, domain.FilterLiked, s.Filter())
	assert.Equal(t, 1, notifications)

	// Setting the same mode again is a no-op and does not notify
	s.SetFilter(domain.FilterLiked)
	assert.Equal(t, 1, notifications)
}

func TestSubscribeDeliversIsolatedSnapshots(t *testing.T) {
	s := NewMemoryStore()

	var last domain.Snapshot
	s.Subscribe(func(snap domain.Snapshot) { last = snap })

	s.SetProducts([]domain.Product{watch()})
	require.Len(t, last.Products, 1)

	// Mutating the delivered snapshot must not leak into the store
	last.Products[0].Title = "Tampered"
	assert.Equal(t, "Watch", s.Products()[0].Title)
}

func TestRestoreBypassesSeedGuard(t *testing.T) {
	s := NewMemoryStore()
	s.SetProducts([]domain.Product{watch()})

	s.Restore(domain.Snapshot{
		Products:      []domain.Product{ring()},
		LikedProducts: []int64{2},
		CartItems:     []domain.CartItem{{ProductID: 2, Quantity: 1}},
	})

	require.Len(t, s.Products(), 1)
	assert.Equal(t, int64(2), s.Products()[0].ID)
	assert.Equal(t, []int64{2}, s.LikedProducts())
	assert.Equal(t, 1, s.CartItemCount())
}
