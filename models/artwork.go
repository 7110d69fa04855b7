package models

import "time"

// Artwork statuses as stored in the artworks.status column.
const (
	ArtworkStatusAvailable = "available"
	ArtworkStatusSold      = "sold"
)

// Artwork is a single piece listed in the gallery catalogue.
// JSON field names follow the public API contract (camelCase, matching
// the web client).
type Artwork struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Medium      string    `json:"medium"`
	Dimensions  string    `json:"dimensions"`
	Year        int       `json:"year"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
