package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/model"
	"github.com/alacartapr/catalog-api/internal/repository"
	"github.com/alacartapr/catalog-api/internal/schedule"
)

type hourEntryReq struct {
	DayOfWeek int     `json:"day_of_week"`
	IsClosed  bool    `json:"is_closed"`
	OpensAt   *string `json:"opens_at"`
	ClosesAt  *string `json:"closes_at"`
}

type putHoursReq struct {
	Hours []hourEntryReq `json:"hours"`
}

type hourEntryResp struct {
	DayOfWeek int     `json:"day_of_week"`
	Day       string  `json:"day"`
	IsClosed  bool    `json:"is_closed"`
	OpensAt   *string `json:"opens_at"`
	ClosesAt  *string `json:"closes_at"`
}

func toHoursResp(entries []model.HourRow) []hourEntryResp {
	out := make([]hourEntryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, hourEntryResp{
			DayOfWeek: e.DayOfWeek,
			Day:       schedule.DayAbbrev(e.DayOfWeek),
			IsClosed:  e.IsClosed,
			OpensAt:   e.OpensAt,
			ClosesAt:  e.ClosesAt,
		})
	}
	return out
}

// GetRestaurantHours returns the stored week expanded to the full
// 7-day frame, absent days shown as closed.
func (h *AdminHandler) GetRestaurantHours(c echo.Context) error {
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
	entries, err := h.Hours.ListByRestaurant(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(entries) == 0 {
		// No schedule yet; the editor starts from an empty form, not
		// from seven synthetic closed days.
		return c.JSON(http.StatusOK, echo.Map{"restaurant_id": id, "hours": []hourEntryResp{}})
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant_id": id, "hours": toHoursResp(schedule.NormalizeWeek(entries))})
}

// PutRestaurantHours replaces a restaurant's weekly hours.  Up to 7
// rows are accepted, at most one per day; open rows must carry
// parseable boundaries with open strictly before close.
func (h *AdminHandler) PutRestaurantHours(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req putHoursReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	entries, err := validateHours(id, req.Hours)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Restaurants.GetByID(ctx, id); err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if err := h.Hours.ReplaceForRestaurant(ctx, id, entries); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant_id": id, "hours": toHoursResp(schedule.NormalizeWeek(entries))})
}

// validateHours checks and converts the submitted rows.  Duplicate
// days are rejected here rather than silently collapsed: an editor
// submitting two Mondays made a mistake worth surfacing.
func validateHours(restaurantID uint64, in []hourEntryReq) ([]model.HourRow, error) {
	if len(in) > 7 {
		return nil, fmt.Errorf("at most 7 rows allowed, got %d", len(in))
	}
	seen := make(map[int]bool, len(in))
	out := make([]model.HourRow, 0, len(in))
	for _, e := range in {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return nil, fmt.Errorf("day_of_week must be 0-6, got %d", e.DayOfWeek)
		}
		if seen[e.DayOfWeek] {
			return nil, fmt.Errorf("duplicate day_of_week %d", e.DayOfWeek)
		}
		seen[e.DayOfWeek] = true

		row := model.HourRow{RestaurantID: restaurantID, DayOfWeek: e.DayOfWeek, IsClosed: e.IsClosed}
		if !e.IsClosed {
			if e.OpensAt == nil || e.ClosesAt == nil {
				return nil, fmt.Errorf("open day %d requires opens_at and closes_at", e.DayOfWeek)
			}
			openMin, ok := schedule.ParseMinutes(*e.OpensAt)
			if !ok {
				return nil, fmt.Errorf("invalid opens_at %q for day %d", *e.OpensAt, e.DayOfWeek)
			}
			closeMin, ok := schedule.ParseMinutes(*e.ClosesAt)
			if !ok {
				return nil, fmt.Errorf("invalid closes_at %q for day %d", *e.ClosesAt, e.DayOfWeek)
			}
			if openMin >= closeMin {
				return nil, fmt.Errorf("opens_at must be before closes_at for day %d", e.DayOfWeek)
			}
			row.OpensAt = e.OpensAt
			row.ClosesAt = e.ClosesAt
		}
		out = append(out, row)
	}
	return out, nil
}
