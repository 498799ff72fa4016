package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alacartapr/catalog-api/internal/model"
)

func TestLabelsByRestaurantSortsAndDeduplicates(t *testing.T) {
	names := NameIndex([]model.Category{
		{ID: 1, Name: "Tacos"},
		{ID: 2, Name: "Bebidas"},
	})
	links := []model.RestaurantCategory{
		{RestaurantID: 7, CategoryID: 1},
		{RestaurantID: 7, CategoryID: 2},
		{RestaurantID: 7, CategoryID: 2}, // duplicate link to Bebidas
	}

	got := LabelsByRestaurant(links, names)
	assert.Equal(t, []string{"Bebidas", "Tacos"}, got[7])
}

func TestLabelsByRestaurantDropsDanglingReferences(t *testing.T) {
	names := NameIndex([]model.Category{{ID: 1, Name: "Tacos"}})
	links := []model.RestaurantCategory{
		{RestaurantID: 7, CategoryID: 1},
		{RestaurantID: 7, CategoryID: 42}, // category row was deleted
		{RestaurantID: 8, CategoryID: 42},
	}

	got := LabelsByRestaurant(links, names)
	assert.Equal(t, []string{"Tacos"}, got[7])
	_, ok := got[8]
	assert.False(t, ok, "restaurant with only dangling links gets no entry")
}

func TestLabelsByRestaurantStableAcrossInputOrder(t *testing.T) {
	names := NameIndex([]model.Category{
		{ID: 1, Name: "Criollo"},
		{ID: 2, Name: "Asiático"},
		{ID: 3, Name: "Brunch"},
	})
	forward := []model.RestaurantCategory{
		{RestaurantID: 5, CategoryID: 1},
		{RestaurantID: 5, CategoryID: 2},
		{RestaurantID: 5, CategoryID: 3},
	}
	backward := []model.RestaurantCategory{
		{RestaurantID: 5, CategoryID: 3},
		{RestaurantID: 5, CategoryID: 2},
		{RestaurantID: 5, CategoryID: 1},
	}

	assert.Equal(t, LabelsByRestaurant(forward, names)[5], LabelsByRestaurant(backward, names)[5])
}

func TestPickVisible(t *testing.T) {
	labels := []string{"A", "B", "C", "D", "E"}

	tests := []struct {
		name     string
		max      int
		visible  []string
		overflow int
	}{
		{"wide context truncates", 3, []string{"A", "B", "C"}, 2},
		{"narrow context truncates", 2, []string{"A", "B"}, 3},
		{"exact fit", 5, labels, 0},
		{"more room than labels", 8, labels, 0},
		{"zero visible", 0, []string{}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickVisible(labels, tt.max)
			assert.Equal(t, tt.visible, got.Visible)
			assert.Equal(t, tt.overflow, got.Overflow)
		})
	}
}

func TestPickVisibleEmptyList(t *testing.T) {
	got := PickVisible(nil, VisibleWide)
	assert.Empty(t, got.Visible)
	assert.Zero(t, got.Overflow)
}
