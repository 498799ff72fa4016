package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/model"
	"github.com/alacartapr/catalog-api/internal/repository"
)

type categoryReq struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type replaceCategoriesReq struct {
	CategoryIDs []uint64 `json:"category_ids"`
}

// CreateCategory adds a category to the global list.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and slug required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat := model.Category{Name: req.Name, Slug: req.Slug}
	if err := h.Categories.Create(ctx, &cat); err != nil {
		if err == repository.ErrSlugExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, categoryItem{ID: cat.ID, Name: cat.Name, Slug: cat.Slug})
}

// DeleteCategory removes a category and its association rows.  Linked
// restaurants simply lose one label.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Categories.Delete(ctx, id); err != nil {
		if err == repository.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ReplaceRestaurantCategories swaps a restaurant's category links for
// the given id set.  Duplicate ids collapse; an empty set clears every
// link.
func (h *AdminHandler) ReplaceRestaurantCategories(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req replaceCategoriesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Restaurants.GetByID(ctx, id); err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if err := h.Categories.ReplaceForRestaurant(ctx, id, req.CategoryIDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "replace failed"})
	}

	links, err := h.Categories.LinksByRestaurants(ctx, []uint64{id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	ids := make([]uint64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.CategoryID)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant_id": id, "category_ids": ids})
}
