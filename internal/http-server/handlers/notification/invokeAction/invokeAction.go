package invokeAction

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
)

type InvokeResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActionInvoker
type ActionInvoker interface {
	Invoke(id string) bool
}

// New triggers the action attached to a message (UNDO, RETRY, DISMISS) and
// dismisses it. The bus routes the action; it owns none of the semantics.
func New(log *slog.Logger, bus ActionInvoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.invokeAction.New"

		log = log.With(slog.String("op", op))

		messageID := chi.URLParam(r, "id")
		if messageID == "" {
			log.Error("message id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("message id is required"))
			return
		}

		if !bus.Invoke(messageID) {
			log.Error("message not found", slog.String("message_id", messageID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("message not found"))
			return
		}

		log.Info("action invoked", slog.String("message_id", messageID))

		render.JSON(w, r, InvokeResponse{
			Response: response.OK(),
		})
	}
}
