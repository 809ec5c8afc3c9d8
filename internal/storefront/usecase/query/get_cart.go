package query

import (
	"github.com/tair/storefront/internal/storefront/domain"
)

// CartLine is a cart item joined with its product. Product is nil for a
// line whose product no longer exists; such lines contribute zero.
type CartLine struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   *domain.Product `json:"product,omitempty"`
	Subtotal  float64         `json:"subtotal"`
}

// CartView is the derived cart projection served to views
type CartView struct {
	Items []CartLine `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

// GetCartQuery represents the query for the cart projection
type GetCartQuery struct{}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	store domain.ProductStore
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(store domain.ProductStore) *GetCartHandler {
	return &GetCartHandler{store: store}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(q GetCartQuery) (CartView, error) {
	items := h.store.CartItems()

	view := CartView{Items: make([]CartLine, 0, len(items))}
	for _, item := range items {
		line := CartLine{ProductID: item.ProductID, Quantity: item.Quantity}
		if product, ok := h.store.Product(item.ProductID); ok {
			line.Product = &product
			line.Subtotal = product.Price * float64(item.Quantity)
		}
		view.Items = append(view.Items, line)
		view.Count += item.Quantity
		view.Total += line.Subtotal
	}

	return view, nil
}
