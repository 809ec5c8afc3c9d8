package command

import (
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/storefront/domain"
)

// UpdateProductCommand represents the command to partially update a product.
// Nil fields are left unchanged; the id itself is immutable.
type UpdateProductCommand struct {
	ID          int64
	Title       *string
	Price       *float64
	Description *string
	Category    *string
	Image       *string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	store domain.ProductStore
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(store domain.ProductStore) *UpdateProductHandler {
	return &UpdateProductHandler{store: store}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (domain.Product, error) {
	if cmd.ID < 0 {
		return domain.Product{}, fmt.Errorf("invalid product id")
	}

	// Per-field validation, only for fields that are present
	if cmd.Title != nil && len(strings.TrimSpace(*cmd.Title)) < 3 {
		return domain.Product{}, fmt.Errorf("title must be at least 3 characters")
	}
	if cmd.Price != nil && *cmd.Price <= 0 {
		return domain.Product{}, fmt.Errorf("price must be a positive number")
	}
	if cmd.Description != nil && len(strings.TrimSpace(*cmd.Description)) < 10 {
		return domain.Product{}, fmt.Errorf("description must be at least 10 characters")
	}
	if cmd.Category != nil && len(strings.TrimSpace(*cmd.Category)) < 2 {
		return domain.Product{}, fmt.Errorf("category is required")
	}
	if cmd.Image != nil && *cmd.Image != "" && !strings.HasPrefix(*cmd.Image, "http") {
		return domain.Product{}, fmt.Errorf("image must be a valid URL")
	}

	patch := domain.ProductPatch{
		Title:       cmd.Title,
		Price:       cmd.Price,
		Description: cmd.Description,
		Category:    cmd.Category,
		Image:       cmd.Image,
	}
	if cmd.Image != nil && *cmd.Image == "" {
		placeholder := domain.PlaceholderImage
		patch.Image = &placeholder
	}

	product, ok := h.store.UpdateProduct(cmd.ID, patch)
	if !ok {
		return domain.Product{}, fmt.Errorf("product not found")
	}

	return product, nil
}
