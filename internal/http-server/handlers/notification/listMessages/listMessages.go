package listMessages

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/models"
)

type MessagesResponse struct {
	response.Response
	Messages []models.SnackbarMessage `json:"messages"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessagesViewer
type MessagesViewer interface {
	Global() []models.SnackbarMessage
	Modal() []models.SnackbarMessage
	All() []models.SnackbarMessage
}

// New serves one of the bus's derived views. The global view excludes
// modal-only messages; the modal view carries modal and both.
func New(log *slog.Logger, viewer MessagesViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.listMessages.New"

		log = log.With(slog.String("op", op))

		var messages []models.SnackbarMessage

		switch scope := r.URL.Query().Get("scope"); scope {
		case "", "global":
			messages = viewer.Global()
		case "modal":
			messages = viewer.Modal()
		case "all":
			messages = viewer.All()
		default:
			log.Error("invalid scope", slog.String("scope", scope))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid scope"))
			return
		}

		log.Info("messages retrieved", slog.Int("count", len(messages)))

		render.JSON(w, r, MessagesResponse{
			Response: response.OK(),
			Messages: messages,
		})
	}
}
