package models

import (
	"fmt"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is a storefront product row.
type Product struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string                      `json:"title" gorm:"not null;index"`
	Description string                      `json:"description"`
	Price       float64                     `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CategoryID  *uuid.UUID                  `json:"category_id" gorm:"type:uuid;index:idx_products_category"`
	Category    *Category                   `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Images      datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Properties  datatypes.JSONMap           `json:"properties" gorm:"type:jsonb"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"autoCreateTime;index:idx_products_created,sort:desc"`
	UpdatedAt   time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ToCatalog converts the row into the listing engine's representation.
// Property values are stringified; a row without properties keeps a nil map so
// it fails every active property filter.
func (p Product) ToCatalog() catalog.Product {
	out := catalog.Product{
		ID:        p.ID.String(),
		Title:     p.Title,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		Images:    []string(p.Images),
	}
	if p.CategoryID != nil {
		out.Category = catalog.Ref(p.CategoryID.String())
	}
	if p.Properties != nil {
		out.Properties = make(map[string]string, len(p.Properties))
		for name, v := range p.Properties {
			if v == nil {
				continue
			}
			out.Properties[name] = fmt.Sprint(v)
		}
	}
	return out
}

// StorefrontProductResponse is the thin product card returned by listings.
type StorefrontProductResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Image      string            `json:"image"`
	Price      float64           `json:"price"`
	CategoryID string            `json:"category_id,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewStorefrontProduct builds a product card; the first image is the cover.
func NewStorefrontProduct(p catalog.Product) StorefrontProductResponse {
	card := StorefrontProductResponse{
		ID:         p.ID,
		Title:      p.Title,
		Price:      p.Price,
		CategoryID: p.Category.ID(),
		Properties: p.Properties,
		CreatedAt:  p.CreatedAt,
	}
	if len(p.Images) > 0 {
		card.Image = p.Images[0]
	}
	return card
}

// NewStorefrontProducts maps a product list to cards, never returning nil.
func NewStorefrontProducts(products []catalog.Product) []StorefrontProductResponse {
	cards := make([]StorefrontProductResponse, len(products))
	for i, p := range products {
		cards[i] = NewStorefrontProduct(p)
	}
	return cards
}
