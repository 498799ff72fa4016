package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/model"
	"github.com/alacartapr/catalog-api/internal/queue"
	"github.com/alacartapr/catalog-api/internal/repository"
	queue_publisher "github.com/alacartapr/catalog-api/internal/service"
)

// AdminHandler serves the back-office endpoints content editors use to
// manage listings.  Unlike the public handlers it also sees drafts.
type AdminHandler struct {
	Restaurants *repository.RestaurantRepo
	Categories  *repository.CategoryRepo
	Hours       *repository.HoursRepo
	Locations   *repository.LocationRepo
	Gallery     *repository.GalleryRepo
}

func NewAdminHandler(rr *repository.RestaurantRepo, cr *repository.CategoryRepo,
	hr *repository.HoursRepo, lr *repository.LocationRepo, gr *repository.GalleryRepo) *AdminHandler {
	return &AdminHandler{Restaurants: rr, Categories: cr, Hours: hr, Locations: lr, Gallery: gr}
}

type restaurantReq struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	PriceLevel  *uint8  `json:"price_level"`
	CoverURL    *string `json:"cover_url"`
}

type restaurantResp struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	PriceLevel  *uint8    `json:"price_level"`
	CoverURL    *string   `json:"cover_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toRestaurantResp(r *model.Restaurant) restaurantResp {
	return restaurantResp{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Phone:       r.Phone,
		Website:     r.Website,
		PriceLevel:  r.PriceLevel,
		CoverURL:    r.CoverURL,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// ListRestaurants returns every listing including drafts, newest first.
func (h *AdminHandler) ListRestaurants(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rests, err := h.Restaurants.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]restaurantResp, 0, len(rests))
	for _, r := range rests {
		out = append(out, toRestaurantResp(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurants": out})
}

// GetRestaurant returns one listing by id, drafts included.
func (h *AdminHandler) GetRestaurant(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rest, err := h.Restaurants.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toRestaurantResp(rest))
}

// CreateRestaurant inserts a new listing in draft status.
func (h *AdminHandler) CreateRestaurant(c echo.Context) error {
	var req restaurantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and slug required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rest := model.Restaurant{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Phone:       req.Phone,
		Website:     req.Website,
		PriceLevel:  req.PriceLevel,
		CoverURL:    req.CoverURL,
	}
	if err := h.Restaurants.Create(ctx, &rest); err != nil {
		if err == repository.ErrSlugExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, toRestaurantResp(&rest))
}

// UpdateRestaurant rewrites the editable fields of a listing.
func (h *AdminHandler) UpdateRestaurant(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req restaurantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and slug required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rest := model.Restaurant{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Phone:       req.Phone,
		Website:     req.Website,
		PriceLevel:  req.PriceLevel,
		CoverURL:    req.CoverURL,
	}
	if err := h.Restaurants.Update(ctx, &rest); err != nil {
		switch err {
		case repository.ErrSlugExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		case repository.ErrRestaurantNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Restaurants.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toRestaurantResp(updated))
}

// DeleteRestaurant removes a listing with all dependent rows.
func (h *AdminHandler) DeleteRestaurant(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Restaurants.Delete(ctx, id); err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// PublishRestaurant flips a listing to published and emits a
// restaurant.published event.  Publishing an already-published listing
// is a no-op that still answers 200.
func (h *AdminHandler) PublishRestaurant(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rest, err := h.Restaurants.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rest.Status == model.StatusPublished {
		return c.JSON(http.StatusOK, toRestaurantResp(rest))
	}

	if err := h.Restaurants.UpdateStatus(ctx, id, model.StatusPublished); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "publish failed"})
	}
	rest.Status = model.StatusPublished

	// Snapshot the category names for the event payload.
	var names []string
	if cats, err := h.Categories.ListAll(ctx); err == nil {
		if links, err := h.Categories.LinksByRestaurants(ctx, []uint64{id}); err == nil {
			idx := make(map[uint64]string, len(cats))
			for _, cat := range cats {
				idx[cat.ID] = cat.Name
			}
			for _, l := range links {
				if n, ok := idx[l.CategoryID]; ok {
					names = append(names, n)
				}
			}
		}
	}

	ev := queue.RestaurantPublishedEvent{
		RestaurantID: rest.ID,
		Name:         rest.Name,
		Slug:         rest.Slug,
		Categories:   names,
		PublishedBy:  editorID(c),
		PublishedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	// Broker trouble must not fail the publish itself; the publisher
	// logs its own errors.
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishRestaurantPublished(pubCtx, ev)
	}()

	return c.JSON(http.StatusOK, toRestaurantResp(rest))
}

// UnpublishRestaurant moves a listing back to draft, hiding it from the
// public site.
func (h *AdminHandler) UnpublishRestaurant(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Restaurants.UpdateStatus(ctx, id, model.StatusDraft); err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "unpublish failed"})
	}
	rest, err := h.Restaurants.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toRestaurantResp(rest))
}

// editorID extracts the acting editor's id from the JWT claims stored
// in context by the auth middleware.
func editorID(c echo.Context) uint64 {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v)
	case uint64:
		return v
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
