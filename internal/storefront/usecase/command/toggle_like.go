package command

import (
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// ToggleLikeCommand represents the command to flip a product's liked state
type ToggleLikeCommand struct {
	ID int64
}

// ToggleLikeHandler handles the like toggle command
type ToggleLikeHandler struct {
	store domain.ProductStore
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(store domain.ProductStore) *ToggleLikeHandler {
	return &ToggleLikeHandler{store: store}
}

// Handle executes the toggle like command, returning the new liked state
func (h *ToggleLikeHandler) Handle(cmd ToggleLikeCommand) (bool, error) {
	if cmd.ID < 0 {
		return false, fmt.Errorf("invalid product id")
	}

	return h.store.ToggleLike(cmd.ID), nil
}
