package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	category_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// main loads a catalog export into the storefront database.
// Usage: go run ./cmd/seed -file testdata/catalog.json [-reset]
func main() {
	file := flag.String("file", "testdata/catalog.json", "catalog export to load")
	reset := flag.Bool("reset", false, "delete existing products and categories first")
	flag.Parse()

	cfg := config.Load()
	logger, err := config.InitLogger(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	fixture, err := services.LoadFixture(*file)
	if err != nil {
		logger.Fatal("cannot read catalog export", zap.Error(err))
	}

	if err := config.InitDB(); err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer config.CloseDB()

	db := config.StoreGorm
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	var categories []models.Category
	var products []models.Product
	err = db.Transaction(func(tx *gorm.DB) error {
		if *reset {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
				return fmt.Errorf("clear products: %w", err)
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Category{}).Error; err != nil {
				return fmt.Errorf("clear categories: %w", err)
			}
		}

		var ids map[string]uuid.UUID
		categories, ids = buildCategories(fixture.Categories)
		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("insert categories: %w", err)
			}
		}

		products = buildProducts(fixture.Products, ids)
		if len(products) > 0 {
			if err := tx.CreateInBatches(&products, 200).Error; err != nil {
				return fmt.Errorf("insert products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	// Running storefronts pick the new catalog up once the shared snapshot is gone.
	if err := config.ConnectRedis(); err != nil {
		logger.Warn("redis unavailable, cached catalogs expire on their own", zap.Error(err))
	} else {
		defer config.CloseRedis()
		store := category_cache.NewRedisSnapshotStore(config.RedisClient, cfg.CacheTTL)
		if err := store.Invalidate(context.Background()); err != nil {
			logger.Warn("failed to invalidate shared catalog", zap.Error(err))
		}
	}

	logger.Info("catalog seeded",
		zap.String("file", *file),
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)),
	)
}

// buildCategories assigns database ids to the exported categories and
// resolves parent references. Parents missing from the export are dropped.
func buildCategories(exported []catalog.Category) ([]models.Category, map[string]uuid.UUID) {
	ids := make(map[string]uuid.UUID, len(exported))
	for _, c := range exported {
		if _, dup := ids[c.ID]; !dup {
			ids[c.ID] = uuid.Must(uuid.NewV7())
		}
	}

	rows := make([]models.Category, 0, len(exported))
	seen := make(map[string]struct{}, len(exported))
	for _, c := range exported {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}

		row := models.Category{
			ID:         ids[c.ID],
			Name:       c.Name,
			Properties: datatypes.NewJSONSlice(c.Properties),
		}
		if parent, ok := ids[c.Parent.ID()]; ok && c.Parent.ID() != c.ID {
			row.ParentID = &parent
		}
		rows = append(rows, row)
	}
	return rows, ids
}

func buildProducts(exported []catalog.Product, categoryIDs map[string]uuid.UUID) []models.Product {
	rows := make([]models.Product, 0, len(exported))
	for _, p := range exported {
		row := models.Product{
			Title:     p.Title,
			Price:     p.Price,
			Images:    datatypes.NewJSONSlice(p.Images),
			CreatedAt: p.CreatedAt,
		}
		if row.Images == nil {
			row.Images = datatypes.NewJSONSlice([]string{})
		}
		if id, ok := categoryIDs[p.Category.ID()]; ok {
			row.CategoryID = &id
		}
		if p.Properties != nil {
			row.Properties = make(datatypes.JSONMap, len(p.Properties))
			for name, value := range p.Properties {
				row.Properties[name] = value
			}
		}
		rows = append(rows, row)
	}
	return rows
}
