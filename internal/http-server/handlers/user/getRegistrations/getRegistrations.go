package getRegistrations

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
)

type RegistrationsResponse struct {
	response.Response
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsProvider
type RegistrationsProvider interface {
	Registrations(ctx context.Context, userID string) ([]models.Registration, error)
}

// New serves the dashboard view: the user's registrations with event
// details attached.
func New(log *slog.Logger, provider RegistrationsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getRegistrations.New"

		log = log.With(slog.String("op", op))

		userID := chi.URLParam(r, "id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		registrations, err := provider.Registrations(r.Context(), userID)
		if err != nil {
			log.Error("failed to get registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registrations"))
			return
		}

		log.Info("registrations retrieved", slog.Int("count", len(registrations)))

		render.JSON(w, r, RegistrationsResponse{
			Response:      response.OK(),
			Registrations: registrations,
		})
	}
}
