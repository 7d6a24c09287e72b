package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopverse/shopverse/pkg/enums"
	"github.com/shopverse/shopverse/pkg/models"
)

// SeedProducts is the built-in catalog applied when no persisted catalog
// exists yet, so a fresh installation has something to browse.
func SeedProducts() []models.Product {
	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	return []models.Product{
		{
			ID:          "prod_seed_001",
			Name:        "Wireless Noise-Cancelling Headphones",
			Category:    enums.CategoryElectronics,
			Price:       decimal.RequireFromString("199.99"),
			Discount:    decimal.RequireFromString("15"),
			Stock:       42,
			Description: "Over-ear Bluetooth headphones with active noise cancellation and 30-hour battery life.",
			Rating:      4.6,
			ReviewCount: 1283,
			Images:      []string{"/images/products/headphones-1.jpg", "/images/products/headphones-2.jpg"},
			Features:    []string{"Active noise cancellation", "30h battery", "Bluetooth 5.3", "USB-C fast charge"},
			Brand:       "Auralis",
			CreatedAt:   createdAt,
		},
		{
			ID:          "prod_seed_002",
			Name:        "Smart Fitness Watch",
			Category:    enums.CategoryElectronics,
			Price:       decimal.RequireFromString("149.00"),
			Discount:    decimal.RequireFromString("10"),
			Stock:       67,
			Description: "Water-resistant fitness tracker with heart-rate monitoring, GPS and a week of battery.",
			Rating:      4.3,
			ReviewCount: 892,
			Images:      []string{"/images/products/watch-1.jpg"},
			Features:    []string{"Heart-rate monitor", "Built-in GPS", "5 ATM water resistance"},
			Brand:       "Pulseon",
			CreatedAt:   createdAt,
		},
		{
			ID:          "prod_seed_003",
			Name:        "Classic Denim Jacket",
			Category:    enums.CategoryFashion,
			Price:       decimal.RequireFromString("79.50"),
			Discount:    decimal.RequireFromString("20"),
			Stock:       120,
			Description: "Mid-wash denim jacket with a relaxed fit and brushed-metal buttons.",
			Rating:      4.1,
			ReviewCount: 347,
			Images:      []string{"/images/products/denim-jacket-1.jpg"},
			Features:    []string{"100% cotton denim", "Machine washable"},
			Brand:       "North & Main",
			CreatedAt:   createdAt,
		},
		{
			ID:          "prod_seed_004",
			Name:        "Organic Arabica Coffee Beans, 1kg",
			Category:    enums.CategoryGrocery,
			Price:       decimal.RequireFromString("24.99"),
			Discount:    decimal.RequireFromString("0"),
			Stock:       200,
			Description: "Single-origin medium roast, certified organic, whole bean.",
			Rating:      4.8,
			ReviewCount: 2150,
			Images:      []string{"/images/products/coffee-1.jpg"},
			Features:    []string{"Single origin", "Medium roast", "Certified organic"},
			Brand:       "Cloudforest Roasters",
			CreatedAt:   createdAt,
		},
		{
			ID:          "prod_seed_005",
			Name:        "Ergonomic Mesh Office Chair",
			Category:    enums.CategoryFurniture,
			Price:       decimal.RequireFromString("289.00"),
			Discount:    decimal.RequireFromString("25"),
			Stock:       18,
			Description: "Adjustable lumbar support, breathable mesh back, 4D armrests.",
			Rating:      4.4,
			ReviewCount: 561,
			Images:      []string{"/images/products/chair-1.jpg", "/images/products/chair-2.jpg"},
			Features:    []string{"Adjustable lumbar support", "4D armrests", "Tilt lock"},
			Brand:       "Formwell",
			CreatedAt:   createdAt,
		},
		{
			ID:          "prod_seed_006",
			Name:        "Solid Oak Bookshelf",
			Category:    enums.CategoryFurniture,
			Price:       decimal.RequireFromString("349.00"),
			Discount:    decimal.RequireFromString("0"),
			Stock:       7,
			Description: "Five-shelf bookcase in solid white oak with a natural oil finish.",
			Rating:      4.7,
			ReviewCount: 128,
			Images:      []string{"/images/products/bookshelf-1.jpg"},
			Features:    []string{"Solid white oak", "Five shelves", "Tool-free assembly"},
			Brand:       "Grainhouse",
			CreatedAt:   createdAt,
		},
		{
			ID:          "prod_seed_007",
			Name:        "The Silent Meridian",
			Category:    enums.CategoryBooks,
			Price:       decimal.RequireFromString("16.95"),
			Discount:    decimal.RequireFromString("5"),
			Stock:       300,
			Description: "A literary thriller following a cartographer across three continents. Hardcover, 412 pages.",
			Rating:      4.2,
			ReviewCount: 764,
			Images:      []string{"/images/products/book-meridian.jpg"},
			Features:    []string{"Hardcover", "412 pages"},
			Brand:       "Lantern Press",
			CreatedAt:   createdAt,
		},
		{
			ID:          "prod_seed_008",
			Name:        "Personalized Star Map Print",
			Category:    enums.CategoryCustom,
			Price:       decimal.RequireFromString("39.00"),
			Discount:    decimal.RequireFromString("0"),
			Stock:       999,
			Description: "Custom night-sky print for any date and location, A3 matte paper.",
			Rating:      4.9,
			ReviewCount: 431,
			Images:      []string{"/images/products/star-map.jpg"},
			Features:    []string{"Any date and location", "A3 matte paper", "Frame optional"},
			Brand:       "Shopverse Studio",
			CreatedAt:   createdAt,
		},
	}
}
