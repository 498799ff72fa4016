package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/model"
	"github.com/alacartapr/catalog-api/internal/repository"
)

type locationReq struct {
	Address   *string  `json:"address"`
	Municipio *string  `json:"municipio"`
	Zone      *string  `json:"zone"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	IsPrimary bool     `json:"is_primary"`
}

type putLocationsReq struct {
	Locations []locationReq `json:"locations"`
}

type locationResp struct {
	ID        uint64   `json:"id"`
	Address   *string  `json:"address"`
	Municipio *string  `json:"municipio"`
	Zone      *string  `json:"zone"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	IsPrimary bool     `json:"is_primary"`
}

// GetRestaurantLocations returns a restaurant's locations, primary
// first.
func (h *AdminHandler) GetRestaurantLocations(c echo.Context) error {
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
	locs, err := h.Locations.ListByRestaurant(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant_id": id, "locations": toLocationResps(locs)})
}

// PutRestaurantLocations replaces a restaurant's locations.  At most
// one row keeps the primary flag; the repository enforces
// first-primary-wins.
func (h *AdminHandler) PutRestaurantLocations(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req putLocationsReq
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

	locs := make([]model.Location, 0, len(req.Locations))
	for _, l := range req.Locations {
		locs = append(locs, model.Location{
			RestaurantID: id,
			Address:      l.Address,
			Municipio:    l.Municipio,
			Zone:         l.Zone,
			Lat:          l.Lat,
			Lng:          l.Lng,
			IsPrimary:    l.IsPrimary,
		})
	}
	if err := h.Locations.ReplaceForRestaurant(ctx, id, locs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}

	saved, err := h.Locations.ListByRestaurant(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant_id": id, "locations": toLocationResps(saved)})
}

func toLocationResps(locs []model.Location) []locationResp {
	out := make([]locationResp, 0, len(locs))
	for _, l := range locs {
		out = append(out, locationResp{
			ID:        l.ID,
			Address:   l.Address,
			Municipio: l.Municipio,
			Zone:      l.Zone,
			Lat:       l.Lat,
			Lng:       l.Lng,
			IsPrimary: l.IsPrimary,
		})
	}
	return out
}
