package dismissMessage

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
)

type DismissResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageDismisser
type MessageDismisser interface {
	Dismiss(id string) bool
}

func New(log *slog.Logger, bus MessageDismisser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.dismissMessage.New"

		log = log.With(slog.String("op", op))

		messageID := chi.URLParam(r, "id")
		if messageID == "" {
			log.Error("message id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("message id is required"))
			return
		}

		if !bus.Dismiss(messageID) {
			log.Error("message not found", slog.String("message_id", messageID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("message not found"))
			return
		}

		log.Info("message dismissed", slog.String("message_id", messageID))

		render.JSON(w, r, DismissResponse{
			Response: response.OK(),
		})
	}
}
