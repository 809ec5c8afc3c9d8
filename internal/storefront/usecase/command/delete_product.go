package command

import (
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID int64
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	store domain.ProductStore
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(store domain.ProductStore) *DeleteProductHandler {
	return &DeleteProductHandler{store: store}
}

// Handle executes the delete product command. Removing an absent product
// is a no-op; the removal cascades into the liked-set and the cart.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.ID < 0 {
		return fmt.Errorf("invalid product id")
	}

	h.store.RemoveProduct(cmd.ID)
	return nil
}
