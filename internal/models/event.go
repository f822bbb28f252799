package models

import "encoding/json"

type Event struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Date           string   `json:"date"` // ISO date, e.g. "2024-04-05"
	Time           string   `json:"time"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Speakers       []string `json:"speakers"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Capacity       int      `json:"capacity"`
	AvailableSpots int      `json:"available_spots"`
	CreatedAt      string   `json:"created_at,omitempty"`
	LastUpdated    int64    `json:"last_updated"` // unix milliseconds
}

// IsFree is derived from price and never stored, so it cannot drift.
func (e Event) IsFree() bool {
	return e.Price == 0
}

// RegisteredCount is derived from capacity and available spots.
func (e Event) RegisteredCount() int {
	return e.Capacity - e.AvailableSpots
}

func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	return json.Marshal(struct {
		alias
		IsFree          bool `json:"is_free"`
		RegisteredCount int  `json:"registered_count"`
	}{
		alias:           alias(e),
		IsFree:          e.IsFree(),
		RegisteredCount: e.RegisteredCount(),
	})
}
