package getAllEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/models"
)

type EventsResponse struct {
	response.Response
	Events  []models.Event     `json:"events"`
	Filters models.FilterState `json:"filters"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsViewer
type EventsViewer interface {
	SetSearchQuery(query string)
	SetSortBy(sortBy models.SortBy)
	SetSortDirection(dir models.SortDirection)
	Filtered() []models.Event
	Filters() models.FilterState
}

// New returns the filtered, sorted event list. Query params mutate the
// filter state first; the store recomputes the view on every change.
func New(log *slog.Logger, events EventsViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query()

		if query.Has("q") {
			events.SetSearchQuery(query.Get("q"))
		}

		if query.Has("sort_by") {
			sortBy := models.SortBy(query.Get("sort_by"))
			if !models.ValidSortBy(sortBy) {
				log.Error("invalid sort_by", slog.String("sort_by", string(sortBy)))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid sort_by"))
				return
			}

			events.SetSortBy(sortBy)
		}

		if query.Has("sort_dir") {
			dir := models.SortDirection(query.Get("sort_dir"))
			if !models.ValidSortDirection(dir) {
				log.Error("invalid sort_dir", slog.String("sort_dir", string(dir)))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid sort_dir"))
				return
			}

			events.SetSortDirection(dir)
		}

		filtered := events.Filtered()

		log.Info("events retrieved successfully", slog.Int("count", len(filtered)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   filtered,
			Filters:  events.Filters(),
		})
	}
}
