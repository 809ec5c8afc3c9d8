package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/i18n"
	"github.com/tair/storefront/internal/storefront/domain"
	"github.com/tair/storefront/internal/storefront/usecase/command"
	"github.com/tair/storefront/internal/storefront/usecase/query"
	"github.com/tair/storefront/pkg/logger"
)

// StoreHandler handles HTTP requests for the storefront using CQRS pattern
type StoreHandler struct {
	// Command handlers
	createHandler         *command.CreateProductHandler
	updateHandler         *command.UpdateProductHandler
	deleteHandler         *command.DeleteProductHandler
	toggleLikeHandler     *command.ToggleLikeHandler
	setFilterHandler      *command.SetFilterHandler
	seedHandler           *command.SeedCatalogHandler
	addToCartHandler      *command.AddToCartHandler
	updateCartHandler     *command.UpdateCartQuantityHandler
	removeFromCartHandler *command.RemoveFromCartHandler
	clearCartHandler      *command.ClearCartHandler
	setLanguageHandler    *command.SetLanguageHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler
	getCartHandler    *query.GetCartHandler

	store      domain.ProductStore
	preference *i18n.Preference
}

// NewStoreHandler creates a new storefront handler (manual DI)
func NewStoreHandler(store domain.ProductStore, fetcher *CatalogClients, preference *i18n.Preference) *StoreHandler {
	return NewStoreHandlerWithDI(
		command.NewCreateProductHandler(store),
		command.NewUpdateProductHandler(store),
		command.NewDeleteProductHandler(store),
		command.NewToggleLikeHandler(store),
		command.NewSetFilterHandler(store),
		command.NewSeedCatalogHandler(fetcher.Seeder, store),
		command.NewAddToCartHandler(store),
		command.NewUpdateCartQuantityHandler(store),
		command.NewRemoveFromCartHandler(store),
		command.NewClearCartHandler(store),
		command.NewSetLanguageHandler(preference),
		query.NewGetProductHandler(store, fetcher.Detail),
		query.NewListProductsHandler(store),
		query.NewGetCartHandler(store),
		store,
		preference,
	)
}

// CatalogClients groups the remote catalog capabilities the handler needs.
// Both fields may share one implementation; either may be nil.
type CatalogClients struct {
	Seeder command.ProductFetcher
	Detail query.ProductFetcher
}

// NewStoreHandlerWithDI creates a new storefront handler using dependency
// injection; this is the constructor Wire builds against
func NewStoreHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	toggleLikeHandler *command.ToggleLikeHandler,
	setFilterHandler *command.SetFilterHandler,
	seedHandler *command.SeedCatalogHandler,
	addToCartHandler *command.AddToCartHandler,
	updateCartHandler *command.UpdateCartQuantityHandler,
	removeFromCartHandler *command.RemoveFromCartHandler,
	clearCartHandler *command.ClearCartHandler,
	setLanguageHandler *command.SetLanguageHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	getCartHandler *query.GetCartHandler,
	store domain.ProductStore,
	preference *i18n.Preference,
) *StoreHandler {
	initMetrics()

	return &StoreHandler{
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		deleteHandler:         deleteHandler,
		toggleLikeHandler:     toggleLikeHandler,
		setFilterHandler:      setFilterHandler,
		seedHandler:           seedHandler,
		addToCartHandler:      addToCartHandler,
		updateCartHandler:     updateCartHandler,
		removeFromCartHandler: removeFromCartHandler,
		clearCartHandler:      clearCartHandler,
		setLanguageHandler:    setLanguageHandler,
		getProductHandler:     getProductHandler,
		listHandler:           listHandler,
		getCartHandler:        getCartHandler,
		store:                 store,
		preference:            preference,
	}
}

var (
	metricsOnce    sync.Once
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalProducts  prometheus.Gauge
	cartItemCount  prometheus.Gauge
)

// initMetrics registers the handler metrics once per process; tests build
// several handlers against the default registry
func initMetrics() {
	metricsOnce.Do(func() {
		requestCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_requests_total",
				Help: "Total number of requests to the storefront service",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_request_duration_seconds",
				Help:    "Duration of storefront requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		totalProducts = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_total_products",
				Help: "Number of products currently in the store",
			},
		)

		cartItemCount = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_cart_item_count",
				Help: "Sum of quantities across all cart lines",
			},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
		prometheus.MustRegister(totalProducts)
		prometheus.MustRegister(cartItemCount)
	})
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *StoreHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *StoreHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/like", h.metricsMiddleware("/api/products/{id}/like", h.ToggleLike)).Methods("POST")

	router.HandleFunc("/api/filter", h.metricsMiddleware("/api/filter", h.GetFilter)).Methods("GET")
	router.HandleFunc("/api/filter", h.metricsMiddleware("/api/filter", h.SetFilter)).Methods("PUT")

	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.AddToCart)).Methods("POST")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/{id}", h.metricsMiddleware("/api/cart/{id}", h.UpdateCartItem)).Methods("PUT")
	router.HandleFunc("/api/cart/{id}", h.metricsMiddleware("/api/cart/{id}", h.RemoveFromCart)).Methods("DELETE")

	router.HandleFunc("/api/catalog/refresh", h.metricsMiddleware("/api/catalog/refresh", h.RefreshCatalog)).Methods("POST")

	router.HandleFunc("/api/language", h.metricsMiddleware("/api/language", h.GetLanguage)).Methods("GET")
	router.HandleFunc("/api/language", h.metricsMiddleware("/api/language", h.SetLanguage)).Methods("PUT")
	router.HandleFunc("/api/translations", h.metricsMiddleware("/api/translations", h.GetTranslations)).Methods("GET")

	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *StoreHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Filter:   r.URL.Query().Get("filter"),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
			"filter":   h.store.Filter(),
		},
	})
}

// CreateProduct handles POST /api/products
func (h *StoreHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string  `json:"title"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Image       string  `json:"image"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStateMetrics()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *StoreHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	liked := false
	for _, likedID := range h.store.LikedProducts() {
		if likedID == id {
			liked = true
			break
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"product": product,
			"liked":   liked,
		},
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *StoreHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       *string  `json:"title"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
		Image       *string  `json:"image"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:          id,
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		status := http.StatusBadRequest
		if err.Error() == "product not found" {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *StoreHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStateMetrics()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// ToggleLike handles POST /api/products/{id}/like
func (h *StoreHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	liked, err := h.toggleLikeHandler.Handle(command.ToggleLikeCommand{ID: id})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"productId": id,
			"liked":     liked,
		},
	})
}

// GetFilter handles GET /api/filter
func (h *StoreHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"filter": h.store.Filter()},
	})
}

// SetFilter handles PUT /api/filter
func (h *StoreHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filter string `json:"filter"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	filter, err := h.setFilterHandler.Handle(command.SetFilterCommand{Filter: req.Filter})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"filter": filter},
	})
}

// GetCart handles GET /api/cart
func (h *StoreHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.getCartHandler.Handle(query.GetCartQuery{})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    cart,
	})
}

// AddToCart handles POST /api/cart
func (h *StoreHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddToCartCommand{ProductID: req.ProductID, Quantity: req.Quantity}
	if err := h.addToCartHandler.Handle(cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStateMetrics()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product added to cart",
		Data: map[string]interface{}{
			"count": h.store.CartItemCount(),
		},
	})
}

// UpdateCartItem handles PUT /api/cart/{id}
func (h *StoreHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateCartQuantityCommand{ProductID: id, Quantity: req.Quantity}
	if err := h.updateCartHandler.Handle(cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStateMetrics()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data: map[string]interface{}{
			"count": h.store.CartItemCount(),
		},
	})
}

// RemoveFromCart handles DELETE /api/cart/{id}
func (h *StoreHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.removeFromCartHandler.Handle(command.RemoveFromCartCommand{ProductID: id}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStateMetrics()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product removed from cart",
	})
}

// ClearCart handles DELETE /api/cart
func (h *StoreHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearCartHandler.Handle(command.ClearCartCommand{}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	h.updateStateMetrics()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// RefreshCatalog handles POST /api/catalog/refresh
func (h *StoreHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	applied, err := h.seedHandler.Handle(r.Context(), command.SeedCatalogCommand{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Catalog refresh failed")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   "Failed to fetch catalog",
		})
		return
	}

	h.updateStateMetrics()

	message := "Catalog seed skipped: store already populated"
	if applied {
		message = "Catalog seeded"
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"applied": applied,
			"total":   len(h.store.Products()),
		},
	})
}

// GetLanguage handles GET /api/language
func (h *StoreHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"language":  h.preference.Language(r.Context()),
			"available": i18n.Languages(),
		},
	})
}

// SetLanguage handles PUT /api/language
func (h *StoreHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	lang, err := h.setLanguageHandler.Handle(r.Context(), command.SetLanguageCommand{Language: req.Language})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"language": lang},
	})
}

// GetTranslations handles GET /api/translations
func (h *StoreHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := h.preference.Language(r.Context())
	if requested := r.URL.Query().Get("lang"); requested != "" {
		parsed, ok := i18n.Parse(requested)
		if !ok {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Unsupported language",
			})
			return
		}
		lang = parsed
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"language":     lang,
			"translations": i18n.Table(lang),
		},
	})
}

// HealthCheck handles GET /health
func (h *StoreHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Storefront service is healthy",
	})
}

// updateStateMetrics refreshes the product and cart gauges
func (h *StoreHandler) updateStateMetrics() {
	totalProducts.Set(float64(len(h.store.Products())))
	cartItemCount.Set(float64(h.store.CartItemCount()))
}

// pathID extracts the {id} path variable, responding with 400 when invalid
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id < 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return 0, false
	}
	return id, true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
