package resolveConflict

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
)

type ResolveRequest struct {
	KeepMine *bool `json:"keep_mine" validate:"required"`
}

type ResolveResponse struct {
	response.Response
	Resolved bool `json:"resolved"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConflictResolver
type ConflictResolver interface {
	ResolveConflict(conflictID string, keepMine bool) bool
}

// New commits one side of a queued conflict. Resolving an unknown conflict
// id is a no-op, reported as resolved=false.
func New(log *slog.Logger, resolver ConflictResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.conflict.resolveConflict.New"

		log = log.With(slog.String("op", op))

		conflictID := chi.URLParam(r, "id")
		if conflictID == "" {
			log.Error("conflict id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("conflict id is required"))
			return
		}

		log = log.With(slog.String("conflict_id", conflictID))

		var req ResolveRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		resolved := resolver.ResolveConflict(conflictID, *req.KeepMine)

		log.Info("conflict resolution requested",
			slog.Bool("keep_mine", *req.KeepMine),
			slog.Bool("resolved", resolved),
		)

		render.JSON(w, r, ResolveResponse{
			Response: response.OK(),
			Resolved: resolved,
		})
	}
}
