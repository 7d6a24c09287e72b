package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopverse/shopverse/internal/app"
	"github.com/shopverse/shopverse/pkg/config"
	"github.com/shopverse/shopverse/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       cfg.App.LogLevel,
		Console:     cfg.App.LogConsole,
	})

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap stores", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logg.Error(ctx, "error closing storage", err)
		}
	}()

	logg.Info(ctx, fmt.Sprintf("catalog ready with %d products", len(application.Catalog.Products())))
	logg.Info(ctx, fmt.Sprintf("cart holds %d items, wishlist %d entries, %d orders on record",
		application.Cart.Totals().TotalItems,
		application.Wishlist.Count(),
		len(application.Orders.AllOrders())))
}
