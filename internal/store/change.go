package store

import "eventhub/internal/models"

// Change is a partial update command. Nil fields are left untouched, so a
// Change can be merged into an event without clobbering the rest of it.
type Change struct {
	Name           *string
	Title          *string
	Date           *string
	Time           *string
	Location       *string
	Description    *string
	Speakers       []string
	Price          *float64
	Image          *string
	Capacity       *int
	AvailableSpots *int
}

func (ch Change) apply(ev *models.Event) {
	if ch.Name != nil {
		ev.Name = *ch.Name
	}
	if ch.Title != nil {
		ev.Title = *ch.Title
	}
	if ch.Date != nil {
		ev.Date = *ch.Date
	}
	if ch.Time != nil {
		ev.Time = *ch.Time
	}
	if ch.Location != nil {
		ev.Location = *ch.Location
	}
	if ch.Description != nil {
		ev.Description = *ch.Description
	}
	if ch.Speakers != nil {
		ev.Speakers = ch.Speakers
	}
	if ch.Price != nil {
		ev.Price = *ch.Price
	}
	if ch.Image != nil {
		ev.Image = *ch.Image
	}
	if ch.Capacity != nil {
		ev.Capacity = *ch.Capacity
	}
	if ch.AvailableSpots != nil {
		ev.AvailableSpots = *ch.AvailableSpots
	}
}
