package command

import (
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// AddToCartCommand represents the command to add a product to the cart.
// A quantity below 1 counts as 1, matching the implicit default.
type AddToCartCommand struct {
	ProductID int64
	Quantity  int
}

// AddToCartHandler handles the add to cart command
type AddToCartHandler struct {
	store domain.ProductStore
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(store domain.ProductStore) *AddToCartHandler {
	return &AddToCartHandler{store: store}
}

// Handle executes the add to cart command. Repeat adds for the same
// product merge into one line with the quantities summed.
func (h *AddToCartHandler) Handle(cmd AddToCartCommand) error {
	if cmd.ProductID < 0 {
		return fmt.Errorf("invalid product id")
	}

	h.store.AddToCart(cmd.ProductID, cmd.Quantity)
	return nil
}
