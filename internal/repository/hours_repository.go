package repository

import (
	"context"
	"database/sql"

	"github.com/alacartapr/catalog-api/internal/model"
)

// HoursRepo loads and rewrites the weekly hour rows of a restaurant.
// The table holds 0-7 rows per restaurant, at most one per day of
// week; interpretation of missing rows belongs to the schedule
// package, not to storage.
type HoursRepo struct {
	db *sql.DB
}

func NewHoursRepo(db *sql.DB) *HoursRepo {
	return &HoursRepo{db: db}
}

// ListByRestaurant returns the stored hour rows for one restaurant.
// No ordering is promised; consumers impose their own.
func (r *HoursRepo) ListByRestaurant(ctx context.Context, restaurantID uint64) ([]model.HourRow, error) {
	const q = `SELECT restaurant_id, day_of_week, is_closed, opens_at, closes_at
	           FROM restaurant_hours WHERE restaurant_id = ?`
	rows, err := r.db.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HourRow
	for rows.Next() {
		var h model.HourRow
		if err := rows.Scan(&h.RestaurantID, &h.DayOfWeek, &h.IsClosed, &h.OpensAt, &h.ClosesAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceForRestaurant swaps the full week of hour rows inside a
// transaction.  The handler has already collapsed the input to at
// most one row per day.
func (r *HoursRepo) ReplaceForRestaurant(ctx context.Context, restaurantID uint64, entries []model.HourRow) error {
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM restaurant_hours WHERE restaurant_id = ?", restaurantID); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO restaurant_hours (restaurant_id, day_of_week, is_closed, opens_at, closes_at)
			 VALUES (?,?,?,?,?)`,
			restaurantID, e.DayOfWeek, e.IsClosed, e.OpensAt, e.ClosesAt); err != nil {
			return err
		}
	}
	return nil
}
