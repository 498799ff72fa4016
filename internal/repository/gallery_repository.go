package repository

import (
	"context"
	"database/sql"

	"github.com/alacartapr/catalog-api/internal/model"
)

// GalleryRepo manages the photo gallery rows of a restaurant.  The
// upload pipeline owns the files; this table only stores URLs and a
// sort order.
type GalleryRepo struct {
	db *sql.DB
}

func NewGalleryRepo(db *sql.DB) *GalleryRepo {
	return &GalleryRepo{db: db}
}

// ListByRestaurant returns gallery rows in display order.
func (r *GalleryRepo) ListByRestaurant(ctx context.Context, restaurantID uint64) ([]model.GalleryImage, error) {
	const q = `SELECT id, restaurant_id, url, sort_order, created_at
	           FROM restaurant_gallery_images WHERE restaurant_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GalleryImage
	for rows.Next() {
		var g model.GalleryImage
		if err := rows.Scan(&g.ID, &g.RestaurantID, &g.URL, &g.SortOrder, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add inserts one gallery row and populates its ID.
func (r *GalleryRepo) Add(ctx context.Context, img *model.GalleryImage) error {
	const q = "INSERT INTO restaurant_gallery_images (restaurant_id, url, sort_order) VALUES (?,?,?)"
	res, err := r.db.ExecContext(ctx, q, img.RestaurantID, img.URL, img.SortOrder)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	return nil
}

// Delete removes one gallery row scoped to its restaurant.
func (r *GalleryRepo) Delete(ctx context.Context, restaurantID, imageID uint64) error {
	const q = "DELETE FROM restaurant_gallery_images WHERE id = ? AND restaurant_id = ?"
	res, err := r.db.ExecContext(ctx, q, imageID, restaurantID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
