package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/alacartapr/catalog-api/internal/model"
)

const restaurantCols = "id, name, slug, description, phone, website, price_level, cover_url, status, created_at, updated_at"

// RestaurantRepo encapsulates all database queries related to
// restaurants.  It depends on a sql.DB connection configured at
// startup; injecting it keeps the repo testable.
type RestaurantRepo struct {
	db *sql.DB
}

func NewRestaurantRepo(db *sql.DB) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

func scanRestaurant(row interface{ Scan(...any) error }) (*model.Restaurant, error) {
	var r model.Restaurant
	err := row.Scan(&r.ID, &r.Name, &r.Slug, &r.Description, &r.Phone, &r.Website,
		&r.PriceLevel, &r.CoverURL, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListPublic returns publicly visible restaurants (anything past
// draft), newest first, capped at limit.  When ids is non-nil the
// result is additionally restricted to that id set; the catalog filter
// guarantees the caller never passes an empty restricted set here.
func (r *RestaurantRepo) ListPublic(ctx context.Context, ids []uint64, limit int) ([]*model.Restaurant, error) {
	q := "SELECT " + restaurantCols + " FROM restaurants WHERE status <> ?"
	args := []any{model.StatusDraft}

	if ids != nil {
		q += " AND id IN (" + placeholders(len(ids)) + ")"
		for _, id := range ids {
			args = append(args, id)
		}
	}
	q += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicBySlug fetches a publicly visible restaurant by slug.
// Draft rows behave as if they do not exist.
func (r *RestaurantRepo) GetPublicBySlug(ctx context.Context, slug string) (*model.Restaurant, error) {
	const q = "SELECT " + restaurantCols + " FROM restaurants WHERE slug = ? AND status <> ? LIMIT 1"
	rest, err := scanRestaurant(r.db.QueryRowContext(ctx, q, slug, model.StatusDraft))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rest, nil
}

// GetByID fetches a restaurant regardless of lifecycle status.  Used
// by the back office, which also sees drafts.
func (r *RestaurantRepo) GetByID(ctx context.Context, id uint64) (*model.Restaurant, error) {
	const q = "SELECT " + restaurantCols + " FROM restaurants WHERE id = ? LIMIT 1"
	rest, err := scanRestaurant(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rest, nil
}

// ListAll returns every restaurant including drafts, newest first.
func (r *RestaurantRepo) ListAll(ctx context.Context) ([]*model.Restaurant, error) {
	const q = "SELECT " + restaurantCols + " FROM restaurants ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new restaurant in draft status.  On success the ID
// field is populated and a follow-up SELECT fills the timestamp fields
// so callers receive a fully populated record.
func (r *RestaurantRepo) Create(ctx context.Context, rest *model.Restaurant) error {
	const qInsert = `INSERT INTO restaurants (name, slug, description, phone, website, price_level, cover_url, status)
	                 VALUES (?,?,?,?,?,?,?,?)`
	status := rest.Status
	if status == "" {
		status = model.StatusDraft
	}
	res, err := r.db.ExecContext(ctx, qInsert, rest.Name, rest.Slug, rest.Description,
		rest.Phone, rest.Website, rest.PriceLevel, rest.CoverURL, status)
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
	rest.ID = uint64(id)

	const qSelect = "SELECT status, created_at, updated_at FROM restaurants WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, rest.ID).Scan(&rest.Status, &rest.CreatedAt, &rest.UpdatedAt)
}

// Update rewrites the editable fields of a restaurant.  Lifecycle
// status is changed through UpdateStatus, not here.
func (r *RestaurantRepo) Update(ctx context.Context, rest *model.Restaurant) error {
	const q = `UPDATE restaurants
	           SET name = ?, slug = ?, description = ?, phone = ?, website = ?, price_level = ?, cover_url = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, rest.Name, rest.Slug, rest.Description,
		rest.Phone, rest.Website, rest.PriceLevel, rest.CoverURL, rest.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrSlugExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "row missing" from "nothing changed".
		if _, err := r.GetByID(ctx, rest.ID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus moves a restaurant through its lifecycle
// (draft -> published and back).
func (r *RestaurantRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = "UPDATE restaurants SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a restaurant and all dependent rows (hours, category
// links, locations, gallery images) within a transaction.
func (r *RestaurantRepo) Delete(ctx context.Context, id uint64) error {
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

	var exists uint64
	if err = tx.QueryRowContext(ctx, "SELECT id FROM restaurants WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrRestaurantNotFound
		}
		return err
	}
	for _, q := range []string{
		"DELETE FROM restaurant_hours WHERE restaurant_id = ?",
		"DELETE FROM restaurant_categories WHERE restaurant_id = ?",
		"DELETE FROM locations WHERE restaurant_id = ?",
		"DELETE FROM restaurant_gallery_images WHERE restaurant_id = ?",
		"DELETE FROM restaurants WHERE id = ?",
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}

// placeholders renders n comma-separated "?" markers for IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// isDuplicateKey detects MySQL error 1062 (duplicate entry) without
// depending on driver-specific error types.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
