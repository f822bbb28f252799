package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eventhub/internal/config"
	"eventhub/internal/http-server/handlers/auth/login"
	"eventhub/internal/http-server/handlers/auth/signup"
	"eventhub/internal/http-server/handlers/conflict/listConflicts"
	"eventhub/internal/http-server/handlers/conflict/resolveConflict"
	"eventhub/internal/http-server/handlers/event/cancelRegistration"
	"eventhub/internal/http-server/handlers/event/getAllEvents"
	"eventhub/internal/http-server/handlers/event/getEventInfo"
	"eventhub/internal/http-server/handlers/event/registerEvent"
	"eventhub/internal/http-server/handlers/event/undoAction"
	"eventhub/internal/http-server/handlers/notification/dismissMessage"
	"eventhub/internal/http-server/handlers/notification/invokeAction"
	"eventhub/internal/http-server/handlers/notification/listMessages"
	"eventhub/internal/http-server/handlers/user/getRegistrations"
	"eventhub/internal/http-server/middleware/mwlogger"
	"eventhub/internal/lib/logger/handlers/slogpretty"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/notifier"
	"eventhub/internal/service"
	"eventhub/internal/storage/kv"
	"eventhub/internal/storage/mockapi"
	"eventhub/internal/store"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventhub", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	source := mockapi.New(cfg.Source.Latency)
	sessions := kv.New()
	st := store.New(log)
	bus := notifier.New(log, cfg.Notifier.DefaultDuration)

	events := service.NewEventService(log, st, source, bus)
	auth := service.NewAuthService(log, source, sessions)

	// The bus only routes actions; the undo semantics live here.
	bus.Handle(models.ActionUndo, func(_ string) {
		events.UndoLast()
	})

	if err := events.LoadEvents(context.Background()); err != nil {
		log.Error("failed to load initial events", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getAllEvents.New(log, st))
		r.Post("/undo", undoAction.New(log, events))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", getEventInfo.New(log, st))
			r.Post("/register", registerEvent.New(log, events))
			r.Post("/cancel", cancelRegistration.New(log, events))
		})
	})

	router.Route("/conflicts", func(r chi.Router) {
		r.Get("/", listConflicts.New(log, st))
		r.Post("/{id}/resolve", resolveConflict.New(log, events))
	})

	router.Route("/notifications", func(r chi.Router) {
		r.Get("/", listMessages.New(log, bus))
		r.Post("/{id}/dismiss", dismissMessage.New(log, bus))
		r.Post("/{id}/invoke", invokeAction.New(log, bus))
	})

	router.Post("/auth/login", login.New(log, auth))
	router.Post("/auth/signup", signup.New(log, auth))
	router.Get("/users/{id}/registrations", getRegistrations.New(log, events))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	// The ticker gets its own shutdown channel: receiving from stop here
	// would race main for the one buffered signal.
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Sync.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := events.SyncEvents(context.Background()); err != nil {
					log.Error("failed to sync events", sl.Err(err))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	bus.Clear()

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
