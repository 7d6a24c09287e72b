// Package app wires configuration, storage and the five stores into one
// container with an explicit lifecycle: build, load, use, close.
package app

import (
	"context"

	"go.uber.org/multierr"

	"github.com/shopverse/shopverse/internal/cart"
	"github.com/shopverse/shopverse/internal/catalog"
	"github.com/shopverse/shopverse/internal/checkout"
	"github.com/shopverse/shopverse/internal/identity"
	"github.com/shopverse/shopverse/internal/orders"
	"github.com/shopverse/shopverse/internal/wishlist"
	"github.com/shopverse/shopverse/pkg/config"
	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
)

// App owns the store instances and the storage backend behind them.
type App struct {
	Catalog  *catalog.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Orders   *orders.Store
	Identity *identity.Store
	Checkout *checkout.Service

	storage kv.Store
	log     *logger.Logger
}

// New builds the storage backend selected by config, constructs every
// store over it and loads their persisted collections.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "config is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}

	storage, err := kv.New(ctx, cfg.Storage, log)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "building storage backend")
	}

	var seed []models.Product
	if cfg.Catalog.Seed {
		seed = catalog.SeedProducts()
	}

	catalogStore, err := catalog.NewStore(catalog.StoreParams{KV: storage, Logger: log, Seed: seed})
	if err != nil {
		return nil, closeOnErr(storage, err)
	}
	cartStore, err := cart.NewStore(cart.StoreParams{KV: storage, Logger: log})
	if err != nil {
		return nil, closeOnErr(storage, err)
	}
	wishlistStore, err := wishlist.NewStore(wishlist.StoreParams{KV: storage, Logger: log})
	if err != nil {
		return nil, closeOnErr(storage, err)
	}
	orderStore, err := orders.NewStore(orders.StoreParams{KV: storage, Logger: log})
	if err != nil {
		return nil, closeOnErr(storage, err)
	}
	identityStore, err := identity.NewStore(identity.StoreParams{
		KV:               storage,
		Logger:           log,
		SimulatedLatency: cfg.Auth.SimulatedLatency,
	})
	if err != nil {
		return nil, closeOnErr(storage, err)
	}
	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Cart:     cartStore,
		Orders:   orderStore,
		Identity: identityStore,
		Logger:   log,
	})
	if err != nil {
		return nil, closeOnErr(storage, err)
	}

	app := &App{
		Catalog:  catalogStore,
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Orders:   orderStore,
		Identity: identityStore,
		Checkout: checkoutService,
		storage:  storage,
		log:      log,
	}

	for name, load := range map[string]func(context.Context) error{
		"catalog":  catalogStore.Load,
		"cart":     cartStore.Load,
		"wishlist": wishlistStore.Load,
		"orders":   orderStore.Load,
		"identity": identityStore.Load,
	} {
		if err := load(ctx); err != nil {
			return nil, closeOnErr(storage, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading "+name+" store"))
		}
	}

	return app, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	var errs error
	if a.storage != nil {
		errs = multierr.Append(errs, a.storage.Close())
	}
	return errs
}

func closeOnErr(storage kv.Store, err error) error {
	return multierr.Append(err, storage.Close())
}
