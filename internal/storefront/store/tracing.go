package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/storefront/domain"
)

var tracer = otel.Tracer("storefront-store")

// MemoryStoreWithTracing wraps MemoryStore with tracing
type MemoryStoreWithTracing struct {
	*MemoryStore
}

// NewMemoryStoreWithTracing creates a new store with tracing
func NewMemoryStoreWithTracing() *MemoryStoreWithTracing {
	return &MemoryStoreWithTracing{MemoryStore: NewMemoryStore()}
}

// SetProducts with tracing
func (s *MemoryStoreWithTracing) SetProductsWithContext(ctx context.Context, products []domain.Product) {
	_, span := tracer.Start(ctx, "store.SetProducts",
		trace.WithAttributes(
			attribute.Int("products.count", len(products)),
		),
	)
	defer span.End()

	before := len(s.Products())
	s.MemoryStore.SetProducts(products)
	span.SetAttributes(attribute.Bool("products.applied", before == 0 && len(products) > 0))
}

// AddProduct with tracing
func (s *MemoryStoreWithTracing) AddProductWithContext(ctx context.Context, product domain.Product) domain.Product {
	_, span := tracer.Start(ctx, "store.AddProduct",
		trace.WithAttributes(
			attribute.String("product.title", product.Title),
			attribute.String("product.category", product.Category),
			attribute.Float64("product.price", product.Price),
		),
	)
	defer span.End()

	created := s.MemoryStore.AddProduct(product)
	span.SetAttributes(attribute.Int64("product.id", created.ID))
	return created
}

// RemoveProduct with tracing
func (s *MemoryStoreWithTracing) RemoveProductWithContext(ctx context.Context, id int64) {
	_, span := tracer.Start(ctx, "store.RemoveProduct",
		trace.WithAttributes(
			attribute.Int64("product.id", id),
		),
	)
	defer span.End()

	s.MemoryStore.RemoveProduct(id)
}

// UpdateProduct with tracing
func (s *MemoryStoreWithTracing) UpdateProductWithContext(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, bool) {
	_, span := tracer.Start(ctx, "store.UpdateProduct",
		trace.WithAttributes(
			attribute.Int64("product.id", id),
		),
	)
	defer span.End()

	product, ok := s.MemoryStore.UpdateProduct(id, patch)
	span.SetAttributes(attribute.Bool("product.found", ok))
	return product, ok
}

// ToggleLike with tracing
func (s *MemoryStoreWithTracing) ToggleLikeWithContext(ctx context.Context, id int64) bool {
	_, span := tracer.Start(ctx, "store.ToggleLike",
		trace.WithAttributes(
			attribute.Int64("product.id", id),
		),
	)
	defer span.End()

	liked := s.MemoryStore.ToggleLike(id)
	span.SetAttributes(attribute.Bool("product.liked", liked))
	return liked
}

// AddToCart with tracing
func (s *MemoryStoreWithTracing) AddToCartWithContext(ctx context.Context, productID int64, quantity int) {
	_, span := tracer.Start(ctx, "store.AddToCart",
		trace.WithAttributes(
			attribute.Int64("product.id", productID),
			attribute.Int("cart.quantity", quantity),
		),
	)
	defer span.End()

	s.MemoryStore.AddToCart(productID, quantity)
	span.SetAttributes(attribute.Int("cart.count", s.CartItemCount()))
}
