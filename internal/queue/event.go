// Package queue defines message payloads exchanged over the message broker.
package queue

// RestaurantPublishedEvent is published when an editor flips a listing to
// published. It carries enough context for downstream consumers to log or
// notify without querying the primary database.
type RestaurantPublishedEvent struct {
	RestaurantID uint64   `json:"restaurant_id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Categories   []string `json:"categories"`
	PublishedBy  uint64   `json:"published_by"`
	PublishedAt  string   `json:"published_at"`
}
