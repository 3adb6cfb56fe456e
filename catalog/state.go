package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// NewFilterState returns an empty selection.
func NewFilterState() FilterState {
	return FilterState{
		Categories: []string{},
		Properties: map[string][]string{},
	}
}

// Clone returns a deep copy of s, normalizing nil collections to empty ones.
// Selections are sets: repeated category ids and property values keep their
// first occurrence, and properties left without values are dropped.
func (s FilterState) Clone() FilterState {
	out := FilterState{
		Categories: uniqueInOrder(s.Categories),
		Properties: make(map[string][]string, len(s.Properties)),
		PriceRange: s.PriceRange,
	}
	for name, values := range s.Properties {
		if values = uniqueInOrder(values); len(values) > 0 {
			out.Properties[name] = values
		}
	}
	return out
}

func uniqueInOrder(items []string) []string {
	return newOrderedSet(items...).Items()
}

// HasActiveFilters reports whether any predicate of s is active.
func HasActiveFilters(s FilterState) bool {
	if len(s.Categories) > 0 || s.PriceRange.Min != "" || s.PriceRange.Max != "" {
		return true
	}
	for _, values := range s.Properties {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// ToggleCategory selects id, or deselects it when already selected.
func ToggleCategory(s FilterState, id string) FilterState {
	out := s.Clone()
	if i := slices.Index(out.Categories, id); i >= 0 {
		out.Categories = slices.Delete(out.Categories, i, i+1)
		return out
	}
	out.Categories = append(out.Categories, id)
	return out
}

// ToggleProperty selects value for the named property, or deselects it.
func ToggleProperty(s FilterState, name, value string) FilterState {
	out := s.Clone()
	values := out.Properties[name]
	if i := slices.Index(values, value); i >= 0 {
		values = slices.Delete(values, i, i+1)
	} else {
		values = append(values, value)
	}
	if len(values) == 0 {
		delete(out.Properties, name)
	} else {
		out.Properties[name] = values
	}
	return out
}

// SetPriceBound stores a raw bound (PriceMin or PriceMax). An empty value
// clears the bound.
func SetPriceBound(s FilterState, bound, value string) (FilterState, error) {
	out := s.Clone()
	switch bound {
	case PriceMin:
		out.PriceRange.Min = value
	case PriceMax:
		out.PriceRange.Max = value
	default:
		return s, fmt.Errorf("unknown price bound %q", bound)
	}
	return out, nil
}

// ClearAll returns an empty selection.
func ClearAll() FilterState {
	return NewFilterState()
}

// RemoveTag undoes the filter a tag describes.
//
// Only explicit selections are stored, so removing a category drops just that
// id: children implied by it disappear with it, children that were selected on
// their own stay selected.
func RemoveTag(s FilterState, tag FilterTag) (FilterState, error) {
	switch tag.Kind {
	case TagCategory:
		out := s.Clone()
		out.Categories = slices.DeleteFunc(out.Categories, func(id string) bool { return id == tag.Key })
		return out, nil
	case TagProperty:
		if !slices.Contains(s.Properties[tag.Property], tag.Key) {
			return s.Clone(), nil
		}
		return ToggleProperty(s, tag.Property, tag.Key), nil
	case TagPrice:
		return SetPriceBound(s, tag.Key, "")
	default:
		return s, fmt.Errorf("unknown tag kind %q", tag.Kind)
	}
}

// ActionType names a user action on the filter panel.
type ActionType string

const (
	ActionToggleCategory ActionType = "toggle-category"
	ActionToggleProperty ActionType = "toggle-property"
	ActionSetPrice       ActionType = "set-price"
	ActionRemoveTag      ActionType = "remove-tag"
	ActionClearAll       ActionType = "clear-all"
)

// Action is one user interaction. Which fields are read depends on Type.
type Action struct {
	Type     ActionType `json:"type" binding:"omitempty,oneof=toggle-category toggle-property set-price remove-tag clear-all"`
	Category string     `json:"category,omitempty"`
	Property string     `json:"property,omitempty"`
	Value    string     `json:"value,omitempty"`
	Bound    string     `json:"bound,omitempty"`
	Tag      *FilterTag `json:"tag,omitempty"`
}

var ErrUnknownAction = errors.New("unknown filter action")

// Reduce applies an action to s and returns the resulting state.
func Reduce(s FilterState, a Action) (FilterState, error) {
	switch a.Type {
	case ActionToggleCategory:
		if a.Category == "" {
			return s, errors.New("toggle-category requires a category")
		}
		return ToggleCategory(s, a.Category), nil
	case ActionToggleProperty:
		if a.Property == "" {
			return s, errors.New("toggle-property requires a property")
		}
		return ToggleProperty(s, a.Property, a.Value), nil
	case ActionSetPrice:
		return SetPriceBound(s, a.Bound, a.Value)
	case ActionRemoveTag:
		if a.Tag == nil {
			return s, errors.New("remove-tag requires a tag")
		}
		return RemoveTag(s, *a.Tag)
	case ActionClearAll:
		return ClearAll(), nil
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}
