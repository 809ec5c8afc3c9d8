package command

import (
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// UpdateCartQuantityCommand represents the command to set a cart line's
// quantity. The store clamps the quantity to a minimum of 1.
type UpdateCartQuantityCommand struct {
	ProductID int64
	Quantity  int
}

// UpdateCartQuantityHandler handles the cart quantity update command
type UpdateCartQuantityHandler struct {
	store domain.ProductStore
}

// NewUpdateCartQuantityHandler creates a new cart quantity update handler
func NewUpdateCartQuantityHandler(store domain.ProductStore) *UpdateCartQuantityHandler {
	return &UpdateCartQuantityHandler{store: store}
}

// Handle executes the cart quantity update command; a missing line is a no-op
func (h *UpdateCartQuantityHandler) Handle(cmd UpdateCartQuantityCommand) error {
	if cmd.ProductID < 0 {
		return fmt.Errorf("invalid product id")
	}

	h.store.UpdateCartItemQuantity(cmd.ProductID, cmd.Quantity)
	return nil
}
