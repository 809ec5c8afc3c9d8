package command

import (
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/storefront/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Title       string
	Price       float64
	Description string
	Category    string
	Image       string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	store domain.ProductStore
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(store domain.ProductStore) *CreateProductHandler {
	return &CreateProductHandler{store: store}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (domain.Product, error) {
	// Validation matches the create form: advisory for the view,
	// the store itself accepts anything
	if len(strings.TrimSpace(cmd.Title)) < 3 {
		return domain.Product{}, fmt.Errorf("title must be at least 3 characters")
	}
	if cmd.Price <= 0 {
		return domain.Product{}, fmt.Errorf("price must be a positive number")
	}
	if len(strings.TrimSpace(cmd.Description)) < 10 {
		return domain.Product{}, fmt.Errorf("description must be at least 10 characters")
	}
	if len(strings.TrimSpace(cmd.Category)) < 2 {
		return domain.Product{}, fmt.Errorf("category is required")
	}
	if cmd.Image != "" && !strings.HasPrefix(cmd.Image, "http") {
		return domain.Product{}, fmt.Errorf("image must be a valid URL")
	}

	image := cmd.Image
	if image == "" {
		image = domain.PlaceholderImage
	}

	product := h.store.AddProduct(domain.Product{
		Title:       cmd.Title,
		Price:       cmd.Price,
		Description: cmd.Description,
		Category:    cmd.Category,
		Image:       image,
	})

	return product, nil
}
