package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/model"
	"github.com/alacartapr/catalog-api/internal/repository"
)

type addImageReq struct {
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
}

// GetRestaurantGallery returns the gallery rows in display order.
func (h *AdminHandler) GetRestaurantGallery(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Restaurants.GetByID(ctx, id); err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	imgs, err := h.Gallery.ListByRestaurant(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]galleryItem, 0, len(imgs))
	for _, g := range imgs {
		out = append(out, galleryItem{ID: g.ID, URL: g.URL, SortOrder: g.SortOrder})
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant_id": id, "gallery": out})
}

// AddRestaurantImage appends one photo to a restaurant's gallery.  The
// upload pipeline owns the file; only its URL is stored here.
func (h *AdminHandler) AddRestaurantImage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req addImageReq
	if err := c.Bind(&req); err != nil || req.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Restaurants.GetByID(ctx, id); err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	img := model.GalleryImage{RestaurantID: id, URL: req.URL, SortOrder: req.SortOrder}
	if err := h.Gallery.Add(ctx, &img); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.JSON(http.StatusCreated, galleryItem{ID: img.ID, URL: img.URL, SortOrder: img.SortOrder})
}

// DeleteRestaurantImage removes one gallery row scoped to its
// restaurant.
func (h *AdminHandler) DeleteRestaurantImage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	imageID, err := strconv.ParseUint(c.Param("imageID"), 10, 64)
	if err != nil || imageID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Gallery.Delete(ctx, id, imageID); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
