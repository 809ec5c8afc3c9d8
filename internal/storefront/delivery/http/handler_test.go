package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/i18n"
	"github.com/tair/storefront/internal/storage"
	"github.com/tair/storefront/internal/storefront/domain"
	"github.com/tair/storefront/internal/storefront/store"
)

type stubCatalog struct {
	products []domain.Product
}

func (c *stubCatalog) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return c.products, nil
}

func (c *stubCatalog) FetchProduct(ctx context.Context, id int64) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errors.New("status 404")
}

type testEnv struct {
	store  *store.MemoryStore
	router *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	s := store.NewMemoryStore()
	catalog := &stubCatalog{products: []domain.Product{
		{ID: 100, Title: "Remote Only", Price: 15, Category: "misc", Image: "https://example.com/r.jpg"},
	}}

	handler := NewStoreHandler(s, &CatalogClients{Seeder: catalog, Detail: catalog}, i18n.NewPreference(st))

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	return &testEnv{store: s, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateAndGetProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/products", map[string]interface{}{
		"title":       "Leather Bag",
		"price":       79.99,
		"description": "Handmade leather bag with brass fittings",
		"category":    "fashion",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	products := env.store.Products()
	require.Len(t, products, 1)

	rec = env.do(t, "GET", fmt.Sprintf("/api/products/%d", products[0].ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateProductValidationError(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/products", map[string]interface{}{
		"title": "ab",
		"price": -1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGetProductFallsBackToCatalog(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/products/100", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, "GET", "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetProducts([]domain.Product{{ID: 1, Title: "Watch", Price: 100, Description: "A fine analog watch", Category: "jewelry"}})

	rec := env.do(t, "PUT", "/api/products/1", map[string]interface{}{"price": 150.0})
	require.Equal(t, http.StatusOK, rec.Code)

	product, ok := env.store.Product(1)
	require.True(t, ok)
	assert.Equal(t, 150.0, product.Price)
	assert.Equal(t, "Watch", product.Title)
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "PUT", "/api/products/5", map[string]interface{}{"price": 150.0})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductCascadesIntoCart(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetProducts([]domain.Product{{ID: 1, Title: "Watch", Price: 100}})
	env.store.AddToCart(1, 2)
	env.store.ToggleLike(1)

	rec := env.do(t, "DELETE", "/api/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, env.store.Products())
	assert.Empty(t, env.store.CartItems())
	assert.Empty(t, env.store.LikedProducts())
}

func TestToggleLikeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/products/1/like", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{1}, env.store.LikedProducts())

	rec = env.do(t, "POST", "/api/products/1/like", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.store.LikedProducts())
}

func TestFilterEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "PUT", "/api/filter", map[string]interface{}{"filter": "liked"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FilterLiked, env.store.Filter())

	rec = env.do(t, "PUT", "/api/filter", map[string]interface{}{"filter": "wishlist"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "GET", "/api/filter", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetProducts([]domain.Product{{ID: 1, Title: "Watch", Price: 100}})

	rec := env.do(t, "POST", "/api/cart", map[string]interface{}{"productId": 1, "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, "POST", "/api/cart", map[string]interface{}{"productId": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 3, env.store.CartItemCount())

	rec = env.do(t, "GET", "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var cart struct {
		Count int     `json:"count"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(data, &cart))
	assert.Equal(t, 3, cart.Count)
	assert.InDelta(t, 300.0, cart.Total, 1e-9)

	rec = env.do(t, "PUT", "/api/cart/1", map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.store.CartItemCount())

	rec = env.do(t, "DELETE", "/api/cart/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.store.CartItems())

	env.store.AddToCart(1, 2)
	rec = env.do(t, "DELETE", "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.store.CartItems())
}

func TestCatalogRefreshEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/catalog/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.store.Products(), 1)

	// Second refresh is a guarded no-op
	rec = env.do(t, "POST", "/api/catalog/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.store.Products(), 1)
}

func TestLanguageEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "PUT", "/api/language", map[string]interface{}{"language": "uz"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, "GET", "/api/language", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"uz"`)

	rec = env.do(t, "PUT", "/api/language", map[string]interface{}{"language": "de"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/translations?lang=ru", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Корзина")

	rec = env.do(t, "GET", "/api/translations?lang=de", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
