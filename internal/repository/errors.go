// Package repository contains data access logic separated from HTTP
// handlers.  This file defines sentinel errors shared across the
// repositories so handlers can map failure scenarios to HTTP codes
// with errors.Is instead of inspecting driver errors.
package repository

import "errors"

// ErrRestaurantNotFound is returned when a restaurant row cannot be
// found (or is not visible for the requested lifecycle states).
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrCategoryNotFound is returned when a category row cannot be found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrSlugExists is returned when an insert or update collides with an
// existing unique slug.  Handlers should translate this into 409.
var ErrSlugExists = errors.New("slug already exists")
