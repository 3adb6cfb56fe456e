package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleCategory_RoundTrip(t *testing.T) {
	start := FilterState{Categories: []string{"shoes", "tees"}}

	on := ToggleCategory(start, "boots")
	off := ToggleCategory(on, "boots")

	assert.Equal(t, []string{"shoes", "tees", "boots"}, on.Categories)
	assert.Equal(t, start.Categories, off.Categories)
	assert.Equal(t, []string{"shoes", "tees"}, start.Categories, "input must stay untouched")
}

func TestToggleCategory_DoesNotShareBackingArray(t *testing.T) {
	base := FilterState{Categories: make([]string, 1, 4)}
	base.Categories[0] = "a"

	x := ToggleCategory(base, "x")
	y := ToggleCategory(base, "y")

	assert.Equal(t, []string{"a", "x"}, x.Categories)
	assert.Equal(t, []string{"a", "y"}, y.Categories)
}

func TestToggleProperty(t *testing.T) {
	s := ToggleProperty(NewFilterState(), "Color", "Red")
	s = ToggleProperty(s, "Color", "Blue")
	assert.Equal(t, []string{"Red", "Blue"}, s.Properties["Color"])

	before := s
	s = ToggleProperty(s, "Color", "Red")
	assert.Equal(t, []string{"Blue"}, s.Properties["Color"])
	assert.Equal(t, []string{"Red", "Blue"}, before.Properties["Color"])

	s = ToggleProperty(s, "Color", "Blue")
	_, ok := s.Properties["Color"]
	assert.False(t, ok)
	assert.False(t, HasActiveFilters(s))
}

func TestSetPriceBound(t *testing.T) {
	s, err := SetPriceBound(NewFilterState(), PriceMin, "15")
	require.NoError(t, err)
	s, err = SetPriceBound(s, PriceMax, "99")
	require.NoError(t, err)
	assert.Equal(t, PriceRange{Min: "15", Max: "99"}, s.PriceRange)

	_, err = SetPriceBound(s, "avg", "1")
	assert.Error(t, err)
}

func TestRemoveTag(t *testing.T) {
	s := FilterState{
		Categories: []string{"shoes", "sneakers"},
		Properties: map[string][]string{"Size": {"40", "41"}},
		PriceRange: PriceRange{Min: "5", Max: "50"},
	}

	// sneakers was picked on its own and survives its parent's removal
	out, err := RemoveTag(s, FilterTag{Kind: TagCategory, Key: "shoes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sneakers"}, out.Categories)

	out, err = RemoveTag(out, FilterTag{Kind: TagProperty, Property: "Size", Key: "40"})
	require.NoError(t, err)
	assert.Equal(t, []string{"41"}, out.Properties["Size"])

	out, err = RemoveTag(out, FilterTag{Kind: TagProperty, Property: "Size", Key: "99"})
	require.NoError(t, err)
	assert.Equal(t, []string{"41"}, out.Properties["Size"])

	out, err = RemoveTag(out, FilterTag{Kind: TagPrice, Key: PriceMax})
	require.NoError(t, err)
	assert.Equal(t, PriceRange{Min: "5"}, out.PriceRange)

	_, err = RemoveTag(out, FilterTag{Kind: "bogus"})
	assert.Error(t, err)

	assert.Equal(t, []string{"shoes", "sneakers"}, s.Categories)
}

func TestRemoveTag_ImpliedChildrenLeaveWithParent(t *testing.T) {
	h := BuildHierarchy(storeCategories())
	s := ToggleCategory(NewFilterState(), "shoes")

	out, err := RemoveTag(s, FilterTag{Kind: TagCategory, Key: "shoes"})
	require.NoError(t, err)

	assert.Empty(t, out.Categories)
	assert.Len(t, ApplyFilters(storeProducts(), out, h), 5)
}

func TestReduce(t *testing.T) {
	s, err := Reduce(NewFilterState(), Action{Type: ActionToggleCategory, Category: "shoes"})
	require.NoError(t, err)
	s, err = Reduce(s, Action{Type: ActionToggleProperty, Property: "Size", Value: "40"})
	require.NoError(t, err)
	s, err = Reduce(s, Action{Type: ActionSetPrice, Bound: PriceMin, Value: "10"})
	require.NoError(t, err)
	assert.True(t, HasActiveFilters(s))

	s, err = Reduce(s, Action{Type: ActionRemoveTag, Tag: &FilterTag{Kind: TagCategory, Key: "shoes"}})
	require.NoError(t, err)
	assert.Empty(t, s.Categories)

	s, err = Reduce(s, Action{Type: ActionClearAll})
	require.NoError(t, err)
	assert.False(t, HasActiveFilters(s))

	_, err = Reduce(s, Action{Type: "explode"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = Reduce(s, Action{Type: ActionToggleCategory})
	assert.Error(t, err)
}

func TestClone_TreatsSelectionsAsSets(t *testing.T) {
	s := FilterState{
		Categories: []string{"shoes", "tees", "shoes"},
		Properties: map[string][]string{"Size": {"M", "L", "M"}, "Color": {}},
	}

	out := s.Clone()

	assert.Equal(t, []string{"shoes", "tees"}, out.Categories)
	assert.Equal(t, map[string][]string{"Size": {"M", "L"}}, out.Properties)
	assert.Equal(t, []string{"shoes", "tees", "shoes"}, s.Categories, "input must stay untouched")

	off := ToggleCategory(s, "shoes")
	assert.Equal(t, []string{"tees"}, off.Categories)
}
