// Package catalog derives display-ready listing facts from relational
// snapshot rows: which restaurant ids a category filter selects, and
// which category labels each displayed restaurant shows.  Every function
// here is a pure derivation over already-fetched rows; the only I/O is
// the association fetch injected into ResolveScope.
package catalog

import (
	"context"
	"strings"

	"github.com/alacartapr/catalog-api/internal/model"
)

// Scope is the restaurant-id restriction produced by resolving a
// category selector.  An unrestricted scope means "no filter applied":
// the caller runs its ordinary listing query.  A restricted scope
// carries the exact id set to list, which may be empty.
type Scope struct {
	restricted bool
	ids        []uint64
}

// Unrestricted returns the scope used when no category selector was given.
func Unrestricted() Scope { return Scope{} }

// RestrictedTo returns a scope limited to the given restaurant ids.
// An empty (or nil) slice is a valid restriction meaning zero results.
func RestrictedTo(ids []uint64) Scope {
	return Scope{restricted: true, ids: ids}
}

// Restricted reports whether a filter was applied at all.
func (s Scope) Restricted() bool { return s.restricted }

// IDs returns the restricted id set.  Meaningless when the scope is
// unrestricted.
func (s Scope) IDs() []uint64 { return s.ids }

// IsEmpty reports whether the scope is restricted to zero restaurants.
// Callers must skip the downstream listing query entirely in this case;
// the outcome is identical to running it and intersecting with the
// empty set, minus the wasted round trip.
func (s Scope) IsEmpty() bool { return s.restricted && len(s.ids) == 0 }

// LinkFetcher loads the association rows for one category id.  It is
// injected so the resolver stays free of storage concerns and only
// fetches when the selector actually matched a category.
type LinkFetcher func(ctx context.Context, categoryID uint64) ([]model.RestaurantCategory, error)

// ResolveScope turns an optional category selector into a restaurant-id
// scope:
//
//	no selector            -> Unrestricted
//	unknown slug           -> RestrictedTo(nothing); an unknown category
//	                          means zero results, never "no filter"
//	matched category slug  -> RestrictedTo(deduplicated restaurant ids
//	                          from that category's association rows)
//
// Absence of data is not a failure; the only error returned is the
// fetcher's own.
func ResolveScope(ctx context.Context, selector string, categories []model.Category, fetch LinkFetcher) (Scope, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return Unrestricted(), nil
	}

	var matched *model.Category
	for i := range categories {
		if categories[i].Slug == selector {
			matched = &categories[i]
			break
		}
	}
	if matched == nil {
		return RestrictedTo(nil), nil
	}

	links, err := fetch(ctx, matched.ID)
	if err != nil {
		return Scope{}, err
	}

	seen := make(map[uint64]struct{}, len(links))
	ids := make([]uint64, 0, len(links))
	for _, l := range links {
		if l.RestaurantID == 0 {
			continue
		}
		if _, dup := seen[l.RestaurantID]; dup {
			continue
		}
		seen[l.RestaurantID] = struct{}{}
		ids = append(ids, l.RestaurantID)
	}
	return RestrictedTo(ids), nil
}
