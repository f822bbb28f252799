package undoAction

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
)

type UndoResponse struct {
	response.Response
	Undone bool `json:"undone"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActionUndoer
type ActionUndoer interface {
	UndoLast() bool
}

// New reverses the most recent optimistic mutation. An empty undo log is
// not an error; the response just reports undone=false.
func New(log *slog.Logger, undoer ActionUndoer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.undoAction.New"

		log = log.With(slog.String("op", op))

		undone := undoer.UndoLast()

		log.Info("undo requested", slog.Bool("undone", undone))

		render.JSON(w, r, UndoResponse{
			Response: response.OK(),
			Undone:   undone,
		})
	}
}
