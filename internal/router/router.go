// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/handler"
	"github.com/alacartapr/catalog-api/internal/middleware"
	"github.com/alacartapr/catalog-api/internal/model"
)

// RegisterRoutes registers routes that carry no middleware at all.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the back-office auth routes.  Token-issuing
// operations live under /v1/auth without middleware; /v1/me sits behind
// the JWT and role checks like every other protected endpoint.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// /refresh rotates the refresh token; /refresh-access only mints a
	// new access token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout authenticates by refresh token or bearer, so it takes no
	// JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleEditor))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated directory endpoints.
// The caller passes the response cache and rate limit middleware so
// route wiring stays free of Redis concerns.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/categories", p.GetCategories)
	g.GET("/restaurants", p.ExploreRestaurants)
	g.GET("/restaurants/:slug", p.GetRestaurant)
}

// RegisterAdmin registers the back-office content management routes.
// Both roles may edit; there is no per-restaurant ownership, the whole
// directory is shared editorial surface.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleEditor))

	g.GET("/restaurants", a.ListRestaurants)
	g.POST("/restaurants", a.CreateRestaurant)
	g.GET("/restaurants/:id", a.GetRestaurant)
	g.PUT("/restaurants/:id", a.UpdateRestaurant)
	g.DELETE("/restaurants/:id", a.DeleteRestaurant)
	g.POST("/restaurants/:id/publish", a.PublishRestaurant)
	g.POST("/restaurants/:id/unpublish", a.UnpublishRestaurant)

	g.PUT("/restaurants/:id/categories", a.ReplaceRestaurantCategories)

	g.GET("/restaurants/:id/hours", a.GetRestaurantHours)
	g.PUT("/restaurants/:id/hours", a.PutRestaurantHours)

	g.GET("/restaurants/:id/locations", a.GetRestaurantLocations)
	g.PUT("/restaurants/:id/locations", a.PutRestaurantLocations)

	g.GET("/restaurants/:id/gallery", a.GetRestaurantGallery)
	g.POST("/restaurants/:id/gallery", a.AddRestaurantImage)
	g.DELETE("/restaurants/:id/gallery/:imageID", a.DeleteRestaurantImage)

	g.POST("/categories", a.CreateCategory)
	g.DELETE("/categories/:id", a.DeleteCategory)
}
