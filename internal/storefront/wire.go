//go:build wireinject
// +build wireinject

package storefront

import (
	"github.com/google/wire"

	"github.com/tair/storefront/internal/catalog"
	"github.com/tair/storefront/internal/i18n"
	"github.com/tair/storefront/internal/storage"
	httpDelivery "github.com/tair/storefront/internal/storefront/delivery/http"
	"github.com/tair/storefront/internal/storefront/domain"
	"github.com/tair/storefront/internal/storefront/store"
	"github.com/tair/storefront/internal/storefront/usecase/command"
	"github.com/tair/storefront/internal/storefront/usecase/query"
)

// ProvideProductStore provides the shared state store
func ProvideProductStore() domain.ProductStore {
	return store.NewMemoryStoreWithTracing()
}

// ProvideCatalogClients provides the remote catalog capabilities
func ProvideCatalogClients(client *catalog.Client) *httpDelivery.CatalogClients {
	return &httpDelivery.CatalogClients{Seeder: client, Detail: client}
}

// ProvidePreference provides the language preference
func ProvidePreference(st storage.Storage) *i18n.Preference {
	return i18n.NewPreference(st)
}

func ProvideSeeder(clients *httpDelivery.CatalogClients) command.ProductFetcher {
	return clients.Seeder
}

func ProvideDetailFetcher(clients *httpDelivery.CatalogClients) query.ProductFetcher {
	return clients.Detail
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideProductStore,
	ProvidePreference,
	ProvideCatalogClients,
	ProvideSeeder,
	ProvideDetailFetcher,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewToggleLikeHandler,
	command.NewSetFilterHandler,
	command.NewSeedCatalogHandler,
	command.NewAddToCartHandler,
	command.NewUpdateCartQuantityHandler,
	command.NewRemoveFromCartHandler,
	command.NewClearCartHandler,
	command.NewSetLanguageHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewGetCartHandler,
)

var AllHandlersSet = wire.NewSet(
	StoreSet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeStoreHandler initializes the HTTP handler with all dependencies
func InitializeStoreHandler(st storage.Storage, client *catalog.Client) (*httpDelivery.StoreHandler, error) {
	wire.Build(
		AllHandlersSet,
		httpDelivery.NewStoreHandlerWithDI,
	)
	return nil, nil
}
