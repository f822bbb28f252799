package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/storage/mockapi"
	"eventhub/internal/store"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrFullyBooked          = errors.New("event is fully booked")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrOperationPending     = errors.New("operation already in flight for this event")
)

// DataSource is the async boundary the event flow talks to. Calls may take
// arbitrary time and fail with the kinds mapped below.
type DataSource interface {
	FetchEvents(ctx context.Context) ([]models.Event, error)
	FetchEventByID(ctx context.Context, eventID string) (models.Event, error)
	Register(ctx context.Context, userID, eventID string) (models.Registration, error)
	Cancel(ctx context.Context, userID, eventID string) error
	UserRegistrations(ctx context.Context, userID string) ([]models.Event, error)
	RegisteredEvents(ctx context.Context, userID string) ([]models.Registration, error)
}

// Notifier is the slice of the message bus the event flow needs.
type Notifier interface {
	Post(msg models.SnackbarMessage) string
}

// EventService drives the optimistic mutation flow: apply locally first,
// confirm against the data source, and revert that specific mutation when
// confirmation fails. The store itself never rolls back on its own.
type EventService struct {
	log    *slog.Logger
	store  *store.Store
	source DataSource
	bus    Notifier
}

func NewEventService(log *slog.Logger, st *store.Store, source DataSource, bus Notifier) *EventService {
	return &EventService{
		log:    log,
		store:  st,
		source: source,
		bus:    bus,
	}
}

// LoadEvents replaces the store contents with the data source's truth.
func (s *EventService) LoadEvents(ctx context.Context) error {
	const op = "service.EventService.LoadEvents"

	log := s.log.With(slog.String("op", op))

	s.store.SetLoading(true)

	events, err := s.source.FetchEvents(ctx)
	if err != nil {
		log.Error("failed to fetch events", sl.Err(err))
		s.store.SetError("failed to load events")
		s.bus.Post(models.SnackbarMessage{
			Message: "Failed to load events. Please try again.",
			Type:    models.MessageError,
			Scope:   models.ScopeGlobal,
			Action:  &models.MessageAction{Label: "RETRY", ActionType: models.ActionRetry},
		})

		return fmt.Errorf("%s: %w", op, err)
	}

	s.store.SetAll(events)

	log.Info("events loaded", slog.Int("count", len(events)))

	return nil
}

// Register registers the user for the event. The spot is taken
// optimistically before the data source confirms; on rejection that exact
// change is reverted and the failure is surfaced as a modal message.
func (s *EventService) Register(ctx context.Context, userID, eventID string) error {
	const op = "service.EventService.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
	)

	event, ok := s.store.Event(eventID)
	if !ok {
		return ErrEventNotFound
	}

	if !s.store.TryMarkPending(eventID) {
		return ErrOperationPending
	}
	defer s.store.ClearPending(eventID)

	token, err := s.store.OptimisticRegister(eventID)
	if err != nil {
		if errors.Is(err, store.ErrCapacityExceeded) {
			s.bus.Post(models.SnackbarMessage{
				Message: "Sorry, this event is fully booked",
				Type:    models.MessageError,
				Scope:   models.ScopeModal,
			})

			return ErrFullyBooked
		}

		return ErrEventNotFound
	}

	if _, err := s.source.Register(ctx, userID, eventID); err != nil {
		log.Error("registration rejected", sl.Err(err))

		// Corrective rollback of this operation's own decrement; a global
		// undo here could reverse an unrelated in-flight mutation.
		s.store.Revert(token)

		mapped := mapRegistrationErr(err)
		s.bus.Post(models.SnackbarMessage{
			Message: userMessage(mapped, "Failed to register. Please try again."),
			Type:    models.MessageError,
			Scope:   models.ScopeModal,
		})

		return mapped
	}

	log.Info("registration confirmed")

	s.bus.Post(models.SnackbarMessage{
		Message:  fmt.Sprintf("Successfully registered for %s!", event.Name),
		Type:     models.MessageSuccess,
		Scope:    models.ScopeGlobal,
		Duration: successDuration,
		Action: &models.MessageAction{
			Label:      "UNDO",
			ActionType: models.ActionUndo,
			ActionID:   eventID,
		},
	})

	return nil
}

// CancelRegistration is the mirror flow: the spot is returned
// optimistically, then the cancellation is confirmed.
func (s *EventService) CancelRegistration(ctx context.Context, userID, eventID string) error {
	const op = "service.EventService.CancelRegistration"

	log := s.log.With(
		slog.String("op", op),
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
	)

	event, ok := s.store.Event(eventID)
	if !ok {
		return ErrEventNotFound
	}

	if !s.store.TryMarkPending(eventID) {
		return ErrOperationPending
	}
	defer s.store.ClearPending(eventID)

	token, err := s.store.OptimisticCancel(eventID)
	if err != nil {
		// Incrementing past capacity means an unpaired mutation; log it
		// and keep it away from the user.
		log.Error("optimistic cancel refused", sl.Err(err))

		return ErrEventNotFound
	}

	if err := s.source.Cancel(ctx, userID, eventID); err != nil {
		log.Error("cancellation rejected", sl.Err(err))

		s.store.Revert(token)

		mapped := mapCancellationErr(err)
		s.bus.Post(models.SnackbarMessage{
			Message: userMessage(mapped, "Failed to cancel registration. Please try again."),
			Type:    models.MessageError,
			Scope:   models.ScopeModal,
		})

		return mapped
	}

	log.Info("cancellation confirmed")

	s.bus.Post(models.SnackbarMessage{
		Message: fmt.Sprintf("Registration cancelled for %s", event.Name),
		Type:    models.MessageInfo,
		Scope:   models.ScopeModal,
	})

	return nil
}

// UndoLast reverses the most recent optimistic mutation. Local state only:
// the data source is not contacted.
func (s *EventService) UndoLast() bool {
	const op = "service.EventService.UndoLast"

	action, ok := s.store.Undo()
	if !ok {
		return false
	}

	s.log.Info("action undone",
		slog.String("op", op),
		slog.String("event_id", action.ID),
		slog.String("type", string(action.Type)),
	)

	return true
}

// SyncEvents refetches the collection and reconciles it with local state.
// Untouched events take the remote truth directly; locally modified events
// that diverge are parked in the conflict queue for the user to resolve.
func (s *EventService) SyncEvents(ctx context.Context) error {
	const op = "service.EventService.SyncEvents"

	log := s.log.With(slog.String("op", op))

	remote, err := s.source.FetchEvents(ctx)
	if err != nil {
		log.Error("failed to fetch events", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	conflicts := 0

	for _, serverEvent := range remote {
		local, ok := s.store.Event(serverEvent.ID)
		if !ok {
			s.store.Add(serverEvent)
			continue
		}

		if s.store.HasPending(serverEvent.ID) {
			continue
		}

		if eventsEquivalent(local, serverEvent) {
			continue
		}

		if local.LastUpdated == 0 {
			// Never touched locally: remote wins without ceremony.
			s.store.Replace(serverEvent)
			continue
		}

		s.store.EnqueueConflict(local, serverEvent)
		conflicts++
	}

	if conflicts > 0 {
		s.bus.Post(models.SnackbarMessage{
			Message: fmt.Sprintf("%d event(s) changed on the server while you had local edits", conflicts),
			Type:    models.MessageInfo,
			Scope:   models.ScopeGlobal,
		})
	}

	log.Info("sync complete", slog.Int("conflicts", conflicts))

	return nil
}

// ResolveConflict commits the chosen side of a queued conflict.
func (s *EventService) ResolveConflict(conflictID string, keepMine bool) bool {
	return s.store.ResolveConflict(conflictID, keepMine)
}

// Registrations returns the user's dashboard view of registered events.
func (s *EventService) Registrations(ctx context.Context, userID string) ([]models.Registration, error) {
	const op = "service.EventService.Registrations"

	regs, err := s.source.RegisteredEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return regs, nil
}

// Success messages linger a bit longer so the undo affordance is usable.
const successDuration = 5 * time.Second

func mapRegistrationErr(err error) error {
	switch {
	case errors.Is(err, mockapi.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, mockapi.ErrEventNotFound):
		return ErrEventNotFound
	case errors.Is(err, mockapi.ErrAlreadyRegistered):
		return ErrAlreadyRegistered
	case errors.Is(err, mockapi.ErrFullyBooked):
		return ErrFullyBooked
	default:
		return err
	}
}

func mapCancellationErr(err error) error {
	switch {
	case errors.Is(err, mockapi.ErrRegistrationNotFound):
		return ErrRegistrationNotFound
	default:
		return err
	}
}

func userMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, ErrAlreadyRegistered):
		return "You are already registered for this event."
	case errors.Is(err, ErrFullyBooked):
		return "Sorry, this event is fully booked."
	case errors.Is(err, ErrRegistrationNotFound):
		return "Registration not found."
	case errors.Is(err, ErrUserNotFound):
		return "User not found."
	case errors.Is(err, ErrEventNotFound):
		return "Event not found."
	default:
		return fallback
	}
}

func eventsEquivalent(a, b models.Event) bool {
	return a.Name == b.Name &&
		a.Title == b.Title &&
		a.Date == b.Date &&
		a.Time == b.Time &&
		a.Location == b.Location &&
		a.Description == b.Description &&
		a.Price == b.Price &&
		a.Capacity == b.Capacity &&
		a.AvailableSpots == b.AvailableSpots
}
