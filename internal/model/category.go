package model

// Category is a cuisine or theme label with its own lifecycle,
// independent of any restaurant.  This struct corresponds to a row
// in the `categories` table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – display name shown on badges and filters.
//  Slug – unique URL-safe identifier used in ?cat= selectors.
type Category struct {
	ID   uint64 // categories.id
	Name string // categories.name
	Slug string // categories.slug
}

// RestaurantCategory is a many-to-many association row linking one
// restaurant to one category.  Storage imposes no ordering on these
// rows; any ordering shown to users is derived downstream.
type RestaurantCategory struct {
	RestaurantID uint64 // restaurant_categories.restaurant_id
	CategoryID   uint64 // restaurant_categories.category_id
}
