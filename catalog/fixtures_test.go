package catalog

import (
	"time"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func top(id, name string, props ...PropertyDefinition) Category {
	return Category{ID: id, Name: name, Properties: props}
}

func child(id, name, parent string, props ...PropertyDefinition) Category {
	return Category{ID: id, Name: name, Parent: Ref(parent), Properties: props}
}

func product(id, category string, price float64) Product {
	return Product{ID: id, Title: "Product " + id, Category: Ref(category), Price: price, CreatedAt: baseTime}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

// storeCategories is a small two level tree:
//
//	shoes -> sneakers, boots
//	shirts -> tees
func storeCategories() []Category {
	return []Category{
		top("shoes", "Shoes", PropertyDefinition{Name: "Size", Values: []string{"40", "41"}}),
		top("shirts", "Shirts", PropertyDefinition{Name: "Color", Values: []string{"Red", "Blue"}}),
		child("sneakers", "Sneakers", "shoes", PropertyDefinition{Name: "Size", Values: []string{"41", "42"}}),
		child("boots", "Boots", "shoes", PropertyDefinition{Name: "Material", Values: []string{"Leather"}}),
		child("tees", "Tees", "shirts", PropertyDefinition{Name: "Color", Values: []string{"Blue", "Green"}}),
	}
}

func storeProducts() []Product {
	p1 := product("p1", "shoes", 50)
	p1.Properties = map[string]string{"Size": "40"}
	p2 := product("p2", "sneakers", 80)
	p2.Properties = map[string]string{"Size": "42"}
	p3 := product("p3", "boots", 120)
	p3.Properties = map[string]string{"Material": "Leather", "Size": "41"}
	p4 := product("p4", "tees", 20)
	p4.Properties = map[string]string{"Color": "Blue"}
	p5 := product("p5", "shirts", 35)
	return []Product{p1, p2, p3, p4, p5}
}
