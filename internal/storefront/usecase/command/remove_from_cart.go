package command

import (
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// RemoveFromCartCommand represents the command to delete a cart line
type RemoveFromCartCommand struct {
	ProductID int64
}

// RemoveFromCartHandler handles the remove from cart command
type RemoveFromCartHandler struct {
	store domain.ProductStore
}

// NewRemoveFromCartHandler creates a new remove from cart handler
func NewRemoveFromCartHandler(store domain.ProductStore) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{store: store}
}

// Handle executes the remove from cart command; a missing line is a no-op
func (h *RemoveFromCartHandler) Handle(cmd RemoveFromCartCommand) error {
	if cmd.ProductID < 0 {
		return fmt.Errorf("invalid product id")
	}

	h.store.RemoveFromCart(cmd.ProductID)
	return nil
}
