package repository

import (
	"context"
	"database/sql"

	"github.com/alacartapr/catalog-api/internal/model"
)

// LocationRepo loads and rewrites restaurant locations.  The engine
// never transforms these rows; they are passed through to the
// presentation layer as-is, primary row first.
type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// ListByRestaurant returns a restaurant's locations with any primary
// row sorted first, so callers can take the head as "the" location.
func (r *LocationRepo) ListByRestaurant(ctx context.Context, restaurantID uint64) ([]model.Location, error) {
	const q = `SELECT id, restaurant_id, address, municipio, zone, lat, lng, is_primary
	           FROM locations WHERE restaurant_id = ? ORDER BY is_primary DESC, id`
	rows, err := r.db.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Location
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.RestaurantID, &l.Address, &l.Municipio, &l.Zone, &l.Lat, &l.Lng, &l.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PrimaryByRestaurants returns one location per restaurant for a batch
// of ids, preferring the primary row.  Restaurants without locations
// are simply absent from the map.
func (r *LocationRepo) PrimaryByRestaurants(ctx context.Context, ids []uint64) (map[uint64]model.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := `SELECT id, restaurant_id, address, municipio, zone, lat, lng, is_primary
	      FROM locations WHERE restaurant_id IN (` + placeholders(len(ids)) + `)
	      ORDER BY is_primary DESC, id`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uint64]model.Location)
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.RestaurantID, &l.Address, &l.Municipio, &l.Zone, &l.Lat, &l.Lng, &l.IsPrimary); err != nil {
			return nil, err
		}
		// Ordering puts the preferred row first; keep the first seen.
		if _, ok := out[l.RestaurantID]; !ok {
			out[l.RestaurantID] = l
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceForRestaurant swaps a restaurant's locations inside a
// transaction.  At most one row keeps the primary flag: the first
// row marked primary wins, any further primary flags are cleared.
func (r *LocationRepo) ReplaceForRestaurant(ctx context.Context, restaurantID uint64, locations []model.Location) error {
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM locations WHERE restaurant_id = ?", restaurantID); err != nil {
		return err
	}
	primarySeen := false
	for _, l := range locations {
		isPrimary := l.IsPrimary && !primarySeen
		if isPrimary {
			primarySeen = true
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO locations (restaurant_id, address, municipio, zone, lat, lng, is_primary)
			 VALUES (?,?,?,?,?,?,?)`,
			restaurantID, l.Address, l.Municipio, l.Zone, l.Lat, l.Lng, isPrimary); err != nil {
			return err
		}
	}
	return nil
}
