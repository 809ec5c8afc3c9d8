package query

import (
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/storefront/domain"
)

// ListProductsQuery represents the query to list products. Filter is
// optional and defaults to the store's active filter; Category and Search
// narrow the listing further.
type ListProductsQuery struct {
	Filter   string
	Category string
	Search   string
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	store domain.ProductStore
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(store domain.ProductStore) *ListProductsHandler {
	return &ListProductsHandler{store: store}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	filter := h.store.Filter()
	if q.Filter != "" {
		parsed, ok := domain.ParseFilter(q.Filter)
		if !ok {
			return nil, fmt.Errorf("filter must be %q or %q", domain.FilterAll, domain.FilterLiked)
		}
		filter = parsed
	}

	products := h.store.Products()

	var liked map[int64]bool
	if filter == domain.FilterLiked {
		liked = make(map[int64]bool)
		for _, id := range h.store.LikedProducts() {
			liked[id] = true
		}
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if liked != nil && !liked[p.ID] {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		result = append(result, p)
	}

	return result, nil
}
