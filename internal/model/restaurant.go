package model

import "time"

// Restaurant lifecycle states as stored in restaurants.status.
// Only published (and the legacy active) rows are visible on the
// public site; draft rows exist solely for the back office.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusActive    = "active"
)

// Restaurant represents a directory entry managed by content editors.
// This struct corresponds to a row in the `restaurants` table.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the restaurant.
//  Slug        – unique URL-safe identifier used in public routes.
//  Description – optional descriptive text (nil when absent).
//  Phone       – optional contact phone number.
//  Website     – optional website URL.
//  PriceLevel  – optional price tier 1–4 (nil when unset).
//  CoverURL    – optional cover image URL (owned by the upload pipeline).
//  Status      – lifecycle status (draft/published/active).
//  CreatedAt   – timestamp when the row was created.
//  UpdatedAt   – timestamp of last update.
type Restaurant struct {
	ID          uint64     // restaurants.id
	Name        string     // restaurants.name
	Slug        string     // restaurants.slug
	Description *string    // restaurants.description (nullable)
	Phone       *string    // restaurants.phone (nullable)
	Website     *string    // restaurants.website (nullable)
	PriceLevel  *uint8     // restaurants.price_level (nullable, 1-4)
	CoverURL    *string    // restaurants.cover_url (nullable)
	Status      string     // restaurants.status
	CreatedAt   time.Time  // restaurants.created_at
	UpdatedAt   time.Time  // restaurants.updated_at
}

// Location is a physical address row belonging to a restaurant.  At most
// one row per restaurant is flagged primary; the directory passes the
// coordinates and address text through to the presentation layer unchanged.
//
// Fields:
//  ID           – primary key identifier.
//  RestaurantID – owning restaurant.
//  Address      – street address text.
//  Municipio    – municipality name.
//  Zone         – neighborhood or zone label.
//  Lat, Lng     – WGS84 coordinates (nil when not geocoded).
//  IsPrimary    – whether this row is the restaurant's primary location.
type Location struct {
	ID           uint64   // locations.id
	RestaurantID uint64   // locations.restaurant_id
	Address      *string  // locations.address (nullable)
	Municipio    *string  // locations.municipio (nullable)
	Zone         *string  // locations.zone (nullable)
	Lat          *float64 // locations.lat (nullable)
	Lng          *float64 // locations.lng (nullable)
	IsPrimary    bool     // locations.is_primary
}

// GalleryImage is one photo in a restaurant's gallery, rendered in
// ascending sort_order on the detail page.
type GalleryImage struct {
	ID           uint64    // restaurant_gallery_images.id
	RestaurantID uint64    // restaurant_gallery_images.restaurant_id
	URL          string    // restaurant_gallery_images.url
	SortOrder    int       // restaurant_gallery_images.sort_order
	CreatedAt    time.Time // restaurant_gallery_images.created_at
}
