package listConflicts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/models"
)

type ConflictsResponse struct {
	response.Response
	Conflicts []models.ConflictPayload `json:"conflicts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConflictsViewer
type ConflictsViewer interface {
	Conflicts() []models.ConflictPayload
}

func New(log *slog.Logger, viewer ConflictsViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.conflict.listConflicts.New"

		log = log.With(slog.String("op", op))

		conflicts := viewer.Conflicts()

		log.Info("conflicts retrieved", slog.Int("count", len(conflicts)))

		render.JSON(w, r, ConflictsResponse{
			Response:  response.OK(),
			Conflicts: conflicts,
		})
	}
}
