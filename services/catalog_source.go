package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// CatalogSource loads the complete category and product set.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) ([]catalog.Category, []catalog.Product, error)
}

// PostgresCatalogSource reads categories with a raw pgx query and products
// through GORM.
type PostgresCatalogSource struct {
	pool *pgxpool.Pool
	db   *gorm.DB
}

// categoriesQuery keeps tree order stable across loads: rows inserted in one
// statement can share created_at, and v7 ids follow insertion order.
const categoriesQuery = `
	SELECT
		id::text AS id,
		name,
		parent_id::text AS parent_id,
		COALESCE(properties, '[]'::jsonb) AS properties
	FROM categories
	ORDER BY created_at ASC, id ASC
`

func NewPostgresCatalogSource(pool *pgxpool.Pool, db *gorm.DB) *PostgresCatalogSource {
	return &PostgresCatalogSource{pool: pool, db: db}
}

func (s *PostgresCatalogSource) LoadCatalog(ctx context.Context) ([]catalog.Category, []catalog.Product, error) {
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, nil, err
	}
	return categories, products, nil
}

func (s *PostgresCatalogSource) loadCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := s.pool.Query(ctx, categoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]catalog.Category, 0)
	for rows.Next() {
		var (
			cat      catalog.Category
			parentID *string
			rawProps []byte
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &parentID, &rawProps); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if parentID != nil {
			cat.Parent = catalog.Ref(*parentID)
		}
		if err := json.Unmarshal(rawProps, &cat.Properties); err != nil {
			return nil, fmt.Errorf("decode properties of category %s: %w", cat.ID, err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (s *PostgresCatalogSource) loadProducts(ctx context.Context) ([]catalog.Product, error) {
	var rows []models.Product
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products := make([]catalog.Product, len(rows))
	for i, row := range rows {
		products[i] = row.ToCatalog()
	}
	return products, nil
}
