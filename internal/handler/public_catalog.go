package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/catalog"
	"github.com/alacartapr/catalog-api/internal/model"
	"github.com/alacartapr/catalog-api/internal/repository"
	"github.com/alacartapr/catalog-api/internal/schedule"
)

// PublicHandler serves the unauthenticated directory endpoints: the
// category filter bar, the explore listing, and the restaurant detail
// page.  All derivation (filter scope, label aggregation, availability)
// happens in the catalog and schedule packages over rows fetched here.
type PublicHandler struct {
	Restaurants *repository.RestaurantRepo
	Categories  *repository.CategoryRepo
	Hours       *repository.HoursRepo
	Locations   *repository.LocationRepo
	Gallery     *repository.GalleryRepo

	Loc          *time.Location // operating region timezone
	ListingLimit int

	// Now is swappable in tests; nil means time.Now.
	Now func() time.Time
}

func NewPublicHandler(rr *repository.RestaurantRepo, cr *repository.CategoryRepo,
	hr *repository.HoursRepo, lr *repository.LocationRepo, gr *repository.GalleryRepo,
	loc *time.Location, listingLimit int) *PublicHandler {
	return &PublicHandler{
		Restaurants:  rr,
		Categories:   cr,
		Hours:        hr,
		Locations:    lr,
		Gallery:      gr,
		Loc:          loc,
		ListingLimit: listingLimit,
	}
}

func (h *PublicHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// ----- response shapes -----

type categoryItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type locationPart struct {
	Address   *string  `json:"address"`
	Municipio *string  `json:"municipio"`
	Zone      *string  `json:"zone"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

type listingItem struct {
	ID          uint64                `json:"id"`
	Name        string                `json:"name"`
	Slug        string                `json:"slug"`
	Description *string               `json:"description"`
	CoverURL    *string               `json:"cover_url"`
	PriceLabel  string                `json:"price_label"`
	Location    *locationPart         `json:"location"`
	Narrow      catalog.VisibleLabels `json:"labels_narrow"`
	Wide        catalog.VisibleLabels `json:"labels_wide"`
}

type galleryItem struct {
	ID        uint64 `json:"id"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
}

type detailResp struct {
	ID           uint64          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description"`
	Phone        *string         `json:"phone"`
	Website      *string         `json:"website"`
	CoverURL     *string         `json:"cover_url"`
	PriceLabel   string          `json:"price_label"`
	Categories   []string        `json:"categories"`
	Location     *locationPart   `json:"location"`
	Gallery      []galleryItem   `json:"gallery"`
	Availability schedule.Status `json:"availability"`
	TodayWindow  string          `json:"today_window"`
	WeeklyHours  []string        `json:"weekly_hours"`
}

// GetCategories returns the global category list ordered by name, the
// order the filter bar renders it in.
func (h *PublicHandler) GetCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]categoryItem, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryItem{ID: cat.ID, Name: cat.Name, Slug: cat.Slug})
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}

// ExploreRestaurants serves the public listing, optionally filtered by
// a ?cat=<slug> category selector.  An unknown slug yields an empty
// listing, not an unfiltered one.
func (h *PublicHandler) ExploreRestaurants(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	scope, err := catalog.ResolveScope(ctx, c.QueryParam("cat"), cats, h.Categories.LinksByCategory)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if scope.IsEmpty() {
		// Restricted to nothing: skip the listing query entirely.
		return c.JSON(http.StatusOK, echo.Map{"restaurants": []listingItem{}})
	}

	var ids []uint64
	if scope.Restricted() {
		ids = scope.IDs()
	}
	rests, err := h.Restaurants.ListPublic(ctx, ids, h.ListingLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(rests) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"restaurants": []listingItem{}})
	}

	// One association query and one location query for the whole page.
	pageIDs := make([]uint64, len(rests))
	for i, r := range rests {
		pageIDs[i] = r.ID
	}
	links, err := h.Categories.LinksByRestaurants(ctx, pageIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	primaries, err := h.Locations.PrimaryByRestaurants(ctx, pageIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	labels := catalog.LabelsByRestaurant(links, catalog.NameIndex(cats))

	out := make([]listingItem, 0, len(rests))
	for _, r := range rests {
		item := listingItem{
			ID:          r.ID,
			Name:        r.Name,
			Slug:        r.Slug,
			Description: r.Description,
			CoverURL:    r.CoverURL,
			PriceLabel:  priceLabel(r.PriceLevel),
			Narrow:      catalog.PickVisible(labels[r.ID], catalog.VisibleNarrow),
			Wide:        catalog.PickVisible(labels[r.ID], catalog.VisibleWide),
		}
		if loc, ok := primaries[r.ID]; ok {
			item.Location = toLocationPart(loc)
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurants": out})
}

// GetRestaurant serves the public detail page for one published
// restaurant, availability evaluated at request time in the operating
// timezone.
func (h *PublicHandler) GetRestaurant(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rest, err := h.Restaurants.GetPublicBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	links, err := h.Categories.LinksByRestaurants(ctx, []uint64{rest.ID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	hours, err := h.Hours.ListByRestaurant(ctx, rest.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	locations, err := h.Locations.ListByRestaurant(ctx, rest.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	gallery, err := h.Gallery.ListByRestaurant(ctx, rest.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	labels := catalog.LabelsByRestaurant(links, catalog.NameIndex(cats))[rest.ID]
	if labels == nil {
		labels = []string{}
	}

	now := h.now()
	resp := detailResp{
		ID:           rest.ID,
		Name:         rest.Name,
		Slug:         rest.Slug,
		Description:  rest.Description,
		Phone:        rest.Phone,
		Website:      rest.Website,
		CoverURL:     rest.CoverURL,
		PriceLabel:   priceLabel(rest.PriceLevel),
		Categories:   labels,
		Gallery:      make([]galleryItem, 0, len(gallery)),
		Availability: schedule.Evaluate(hours, now, h.Loc),
		TodayWindow:  schedule.TodayWindow(hours, now, h.Loc),
		WeeklyHours:  schedule.WeeklyLines(hours),
	}
	if len(locations) > 0 {
		// ListByRestaurant sorts any primary row first.
		resp.Location = toLocationPart(locations[0])
	}
	for _, g := range gallery {
		resp.Gallery = append(resp.Gallery, galleryItem{ID: g.ID, URL: g.URL, SortOrder: g.SortOrder})
	}
	return c.JSON(http.StatusOK, resp)
}

// priceLabel renders the stored tier as "$".."$$$$"; values outside
// 1-4 clamp into range and a missing tier renders empty.
func priceLabel(level *uint8) string {
	if level == nil {
		return ""
	}
	n := int(*level)
	if n < 1 {
		n = 1
	}
	if n > 4 {
		n = 4
	}
	return strings.Repeat("$", n)
}

func toLocationPart(l model.Location) *locationPart {
	return &locationPart{
		Address:   l.Address,
		Municipio: l.Municipio,
		Zone:      l.Zone,
		Lat:       l.Lat,
		Lng:       l.Lng,
	}
}
