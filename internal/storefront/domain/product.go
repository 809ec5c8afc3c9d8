package domain

// Product represents a storefront product entity
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// PlaceholderImage is used when a product has no image URL
const PlaceholderImage = "/placeholder.svg?height=400&width=400"

// ProductPatch holds the fields of a partial product update.
// Nil fields are left untouched; the product id is never patched.
type ProductPatch struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// CartItem represents a single cart line: one per product id, quantity >= 1
type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Filter selects which products the listing view displays
type Filter string

const (
	FilterAll   Filter = "all"
	FilterLiked Filter = "liked"
)

// ParseFilter parses a filter mode, reporting whether it is valid
func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case FilterAll, FilterLiked:
		return Filter(s), true
	}
	return FilterAll, false
}

// Snapshot is the persisted state layout. The active filter is
// session-only and deliberately not part of it.
type Snapshot struct {
	Products      []Product  `json:"products"`
	LikedProducts []int64    `json:"likedProducts"`
	CartItems     []CartItem `json:"cartItems"`
}

// ProductStore defines the contract for the shared storefront state.
// Every operation is total: a missing target is a silent no-op or an
// ok=false result, never an error.
type ProductStore interface {
	// SetProducts replaces the collection only when it is currently empty,
	// so a catalog re-fetch never clobbers locally created or edited products.
	SetProducts(products []Product)
	// AddProduct assigns a fresh id and appends the product, returning it.
	AddProduct(product Product) Product
	// RemoveProduct deletes the product and cascades the removal into the
	// liked-set and the cart.
	RemoveProduct(id int64)
	// UpdateProduct merges non-nil patch fields into the product.
	UpdateProduct(id int64, patch ProductPatch) (Product, bool)
	// Product looks up a product by id.
	Product(id int64) (Product, bool)
	// Products returns a copy of the product collection.
	Products() []Product

	// ToggleLike flips liked-set membership and reports the new state.
	ToggleLike(id int64) bool
	// LikedProducts returns a copy of the liked product ids.
	LikedProducts() []int64

	// SetFilter sets the active listing filter; no-op when unchanged.
	SetFilter(filter Filter)
	// Filter returns the active listing filter.
	Filter() Filter

	// AddToCart adds quantity to the product's cart line, creating it on
	// first use. Quantities below 1 count as 1.
	AddToCart(productID int64, quantity int)
	// RemoveFromCart deletes the cart line for the product.
	RemoveFromCart(productID int64)
	// UpdateCartItemQuantity sets the line quantity, clamped to >= 1;
	// no-op when no line exists for the product.
	UpdateCartItemQuantity(productID int64, quantity int)
	// ClearCart empties the cart.
	ClearCart()
	// CartItems returns a copy of the cart lines.
	CartItems() []CartItem
	// CartItemCount returns the sum of quantities across all lines.
	CartItemCount() int
	// CartTotal returns the sum of price*quantity over all lines whose
	// product still exists; dangling lines contribute zero.
	CartTotal() float64

	// Snapshot returns a copy of the persisted portion of the state.
	Snapshot() Snapshot
}
