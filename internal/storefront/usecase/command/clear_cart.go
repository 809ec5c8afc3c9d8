package command

import (
	"github.com/tair/storefront/internal/storefront/domain"
)

// ClearCartCommand represents the command to empty the cart
type ClearCartCommand struct{}

// ClearCartHandler handles the clear cart command
type ClearCartHandler struct {
	store domain.ProductStore
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(store domain.ProductStore) *ClearCartHandler {
	return &ClearCartHandler{store: store}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(cmd ClearCartCommand) error {
	h.store.ClearCart()
	return nil
}
