package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alacartapr/catalog-api/internal/model"
)

var testCategories = []model.Category{
	{ID: 1, Name: "Tacos", Slug: "tacos"},
	{ID: 2, Name: "Bebidas", Slug: "bebidas"},
	{ID: 3, Name: "Postres", Slug: "postres"},
}

func staticLinks(links []model.RestaurantCategory) LinkFetcher {
	return func(ctx context.Context, categoryID uint64) ([]model.RestaurantCategory, error) {
		var out []model.RestaurantCategory
		for _, l := range links {
			if l.CategoryID == categoryID {
				out = append(out, l)
			}
		}
		return out, nil
	}
}

func TestResolveScopeNoSelector(t *testing.T) {
	fetch := func(ctx context.Context, categoryID uint64) ([]model.RestaurantCategory, error) {
		t.Fatal("fetch must not be called without a selector")
		return nil, nil
	}

	scope, err := ResolveScope(context.Background(), "", testCategories, fetch)
	require.NoError(t, err)
	assert.False(t, scope.Restricted())
	assert.False(t, scope.IsEmpty())

	// Whitespace-only selectors count as absent too.
	scope, err = ResolveScope(context.Background(), "   ", testCategories, fetch)
	require.NoError(t, err)
	assert.False(t, scope.Restricted())
}

func TestResolveScopeUnknownSlug(t *testing.T) {
	called := false
	fetch := func(ctx context.Context, categoryID uint64) ([]model.RestaurantCategory, error) {
		called = true
		return nil, nil
	}

	// "taco" is similar to the real "tacos" slug but must still yield
	// zero results, not fall back to unrestricted.
	scope, err := ResolveScope(context.Background(), "taco", testCategories, fetch)
	require.NoError(t, err)
	assert.True(t, scope.Restricted())
	assert.True(t, scope.IsEmpty())
	assert.Empty(t, scope.IDs())
	assert.False(t, called, "no association fetch for an unknown slug")
}

func TestResolveScopeUnknownSlugNoCategories(t *testing.T) {
	scope, err := ResolveScope(context.Background(), "tacos", nil, staticLinks(nil))
	require.NoError(t, err)
	assert.True(t, scope.IsEmpty())
}

func TestResolveScopeMatchDeduplicates(t *testing.T) {
	fetch := staticLinks([]model.RestaurantCategory{
		{RestaurantID: 10, CategoryID: 1},
		{RestaurantID: 11, CategoryID: 1},
		{RestaurantID: 10, CategoryID: 1}, // duplicate association row
		{RestaurantID: 99, CategoryID: 2}, // different category
	})

	scope, err := ResolveScope(context.Background(), "tacos", testCategories, fetch)
	require.NoError(t, err)
	assert.True(t, scope.Restricted())
	assert.False(t, scope.IsEmpty())
	assert.Equal(t, []uint64{10, 11}, scope.IDs())
}

func TestResolveScopeMatchedButUnlinked(t *testing.T) {
	scope, err := ResolveScope(context.Background(), "postres", testCategories, staticLinks(nil))
	require.NoError(t, err)
	assert.True(t, scope.Restricted())
	assert.True(t, scope.IsEmpty())
}

func TestResolveScopeFetchError(t *testing.T) {
	boom := errors.New("connection lost")
	fetch := func(ctx context.Context, categoryID uint64) ([]model.RestaurantCategory, error) {
		return nil, boom
	}

	_, err := ResolveScope(context.Background(), "bebidas", testCategories, fetch)
	assert.ErrorIs(t, err, boom)
}
