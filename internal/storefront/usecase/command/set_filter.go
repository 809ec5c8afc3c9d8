package command

import (
	"fmt"

	"github.com/tair/storefront/internal/storefront/domain"
)

// SetFilterCommand represents the command to change the listing filter
type SetFilterCommand struct {
	Filter string
}

// SetFilterHandler handles the set filter command
type SetFilterHandler struct {
	store domain.ProductStore
}

// NewSetFilterHandler creates a new set filter handler
func NewSetFilterHandler(store domain.ProductStore) *SetFilterHandler {
	return &SetFilterHandler{store: store}
}

// Handle executes the set filter command
func (h *SetFilterHandler) Handle(cmd SetFilterCommand) (domain.Filter, error) {
	filter, ok := domain.ParseFilter(cmd.Filter)
	if !ok {
		return domain.FilterAll, fmt.Errorf("filter must be %q or %q", domain.FilterAll, domain.FilterLiked)
	}

	h.store.SetFilter(filter)
	return filter, nil
}
