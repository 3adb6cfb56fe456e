package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
)

// Fixture is a catalog export: the same shape the storefront API returns for
// categories and products.
type Fixture struct {
	Categories []catalog.Category `json:"categories"`
	Products   []catalog.Product  `json:"products"`
}

// LoadFixture reads a JSON catalog export from disk.
func LoadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return &f, nil
}

// StaticCatalogSource serves a fixed catalog from memory.
type StaticCatalogSource struct {
	fixture Fixture
}

func NewStaticCatalogSource(f Fixture) *StaticCatalogSource {
	return &StaticCatalogSource{fixture: f}
}

func (s *StaticCatalogSource) LoadCatalog(ctx context.Context) ([]catalog.Category, []catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return slices.Clone(s.fixture.Categories), slices.Clone(s.fixture.Products), nil
}
