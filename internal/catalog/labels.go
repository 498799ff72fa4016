package catalog

import (
	"sort"

	"github.com/alacartapr/catalog-api/internal/model"
)

// Visible badge counts for the two display contexts of the explore
// grid: 2 on narrow (mobile) cards, 3 on wide (desktop) cards.
const (
	VisibleNarrow = 2
	VisibleWide   = 3
)

// NameIndex builds the category id -> name lookup once per batch so
// link resolution does not rescan the category list per restaurant.
func NameIndex(categories []model.Category) map[uint64]string {
	idx := make(map[uint64]string, len(categories))
	for _, c := range categories {
		idx[c.ID] = c.Name
	}
	return idx
}

// LabelsByRestaurant resolves association rows to per-restaurant
// category name lists.  Links whose category id is missing from the
// index (dangling references) are dropped silently.  Each resulting
// list is deduplicated by exact string match and sorted with ordinal
// comparison, so rendering stays stable no matter what order storage
// returned the rows in.
func LabelsByRestaurant(links []model.RestaurantCategory, names map[uint64]string) map[uint64][]string {
	out := make(map[uint64][]string)
	for _, l := range links {
		if l.RestaurantID == 0 || l.CategoryID == 0 {
			continue
		}
		name, ok := names[l.CategoryID]
		if !ok {
			continue
		}
		if containsString(out[l.RestaurantID], name) {
			continue
		}
		out[l.RestaurantID] = append(out[l.RestaurantID], name)
	}
	for id := range out {
		sort.Strings(out[id])
	}
	return out
}

// VisibleLabels is a truncated badge list plus the count of names that
// did not fit, rendered as a "+N" indicator.
type VisibleLabels struct {
	Visible  []string `json:"visible"`
	Overflow int      `json:"overflow"`
}

// PickVisible slices the first max names off an already-sorted list.
// Truncation never reorders.  Overflow is max(0, total-max).
func PickVisible(labels []string, max int) VisibleLabels {
	if max < 0 {
		max = 0
	}
	if max > len(labels) {
		max = len(labels)
	}
	visible := make([]string, max)
	copy(visible, labels[:max])
	return VisibleLabels{Visible: visible, Overflow: len(labels) - max}
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
