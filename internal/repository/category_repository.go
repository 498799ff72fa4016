package repository

import (
	"context"
	"database/sql"

	"github.com/alacartapr/catalog-api/internal/model"
)

// CategoryRepo encapsulates queries for categories and their
// restaurant association rows.  The association table has no ordering
// column on purpose; any display ordering is derived by the catalog
// package from the fetched snapshot.
type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListAll returns the global category list ordered by name, the order
// the public filter bar renders it in.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	const q = "SELECT id, name, slug FROM categories ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a category.  The slug must be unique.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	const q = "INSERT INTO categories (name, slug) VALUES (?,?)"
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Slug)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrSlugExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// Delete removes a category together with its association rows.
// Restaurants linked to it simply lose one label.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM restaurant_categories WHERE category_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrCategoryNotFound
		return err
	}
	return nil
}

// LinksByCategory returns the association rows for one category.  This
// is the fetch the catalog filter resolver performs after matching a
// selector slug.
func (r *CategoryRepo) LinksByCategory(ctx context.Context, categoryID uint64) ([]model.RestaurantCategory, error) {
	const q = "SELECT restaurant_id, category_id FROM restaurant_categories WHERE category_id = ?"
	return r.queryLinks(ctx, q, categoryID)
}

// LinksByRestaurants returns the association rows restricted to a
// batch of restaurant ids, one query for the whole displayed page.
func (r *CategoryRepo) LinksByRestaurants(ctx context.Context, ids []uint64) ([]model.RestaurantCategory, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := "SELECT restaurant_id, category_id FROM restaurant_categories WHERE restaurant_id IN (" + placeholders(len(ids)) + ")"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return r.queryLinks(ctx, q, args...)
}

// ReplaceForRestaurant swaps a restaurant's category links for the
// given set inside a transaction.
func (r *CategoryRepo) ReplaceForRestaurant(ctx context.Context, restaurantID uint64, categoryIDs []uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM restaurant_categories WHERE restaurant_id = ?", restaurantID); err != nil {
		return err
	}
	seen := make(map[uint64]struct{}, len(categoryIDs))
	for _, cid := range categoryIDs {
		if _, dup := seen[cid]; dup {
			continue
		}
		seen[cid] = struct{}{}
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO restaurant_categories (restaurant_id, category_id) VALUES (?,?)",
			restaurantID, cid); err != nil {
			return err
		}
	}
	return nil
}

func (r *CategoryRepo) queryLinks(ctx context.Context, q string, args ...any) ([]model.RestaurantCategory, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RestaurantCategory
	for rows.Next() {
		var l model.RestaurantCategory
		if err := rows.Scan(&l.RestaurantID, &l.CategoryID); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
