package models

import (
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category is a storefront category row. Top-level categories have no parent.
type Category struct {
	ID         uuid.UUID                                     `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Name       string                                        `json:"name" gorm:"not null" db:"name"`
	ParentID   *uuid.UUID                                    `json:"parent_id" gorm:"type:uuid;index" db:"parent_id"`
	Properties datatypes.JSONSlice[catalog.PropertyDefinition] `json:"properties" gorm:"type:jsonb;not null;default:'[]'" db:"properties"`
	CreatedAt  time.Time                                     `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt  time.Time                                     `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// ToCatalog converts the row into the listing engine's representation.
func (c Category) ToCatalog() catalog.Category {
	out := catalog.Category{
		ID:         c.ID.String(),
		Name:       c.Name,
		Properties: []catalog.PropertyDefinition(c.Properties),
	}
	if c.ParentID != nil {
		out.Parent = catalog.Ref(c.ParentID.String())
	}
	return out
}

// CategoryData is a category tree node as the storefront renders it.
type CategoryData struct {
	ID            string                       `json:"id"`
	Name          string                       `json:"name"`
	ParentID      string                       `json:"parentId,omitempty"`
	ProductCount  int                          `json:"productCount"`
	Properties    []catalog.PropertyDefinition `json:"properties,omitempty"`
	Subcategories []CategoryData               `json:"subcategories,omitempty"`
}

// NewCategoryTree renders a hierarchy as nested nodes. Counts are looked up by
// category id; a missing entry counts as zero.
func NewCategoryTree(h catalog.CategoryHierarchy, counts map[string]int) []CategoryData {
	tree := make([]CategoryData, 0, len(h.TopLevel))
	for _, parent := range h.TopLevel {
		node := NewCategoryData(parent, counts)
		node.Subcategories = make([]CategoryData, 0, len(h.ChildrenOf[parent.ID]))
		for _, child := range h.ChildrenOf[parent.ID] {
			node.Subcategories = append(node.Subcategories, NewCategoryData(child, counts))
		}
		tree = append(tree, node)
	}
	return tree
}

// NewCategoryData renders a single category without children.
func NewCategoryData(c catalog.Category, counts map[string]int) CategoryData {
	return CategoryData{
		ID:           c.ID,
		Name:         c.Name,
		ParentID:     c.Parent.ID(),
		ProductCount: counts[c.ID],
		Properties:   c.Properties,
	}
}
