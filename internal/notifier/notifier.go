package notifier

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventhub/internal/models"
)

// DefaultDuration is the display lifetime used when a message does not
// carry one of its own.
const DefaultDuration = 4 * time.Second

// ActionFunc is invoked when a user triggers a message's action. The bus
// only routes by action type; the semantics live with the handler.
type ActionFunc func(actionID string)

// Bus is the ephemeral, scoped queue of user-facing messages. Each message
// self-removes after its duration unless dismissed earlier; expiry timers
// are cancelled on early dismissal.
type Bus struct {
	mu sync.Mutex

	log             *slog.Logger
	defaultDuration time.Duration

	messages []models.SnackbarMessage
	timers   map[string]*time.Timer
	handlers map[models.ActionType]ActionFunc
}

func New(log *slog.Logger, defaultDuration time.Duration) *Bus {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}

	return &Bus{
		log:             log,
		defaultDuration: defaultDuration,
		timers:          make(map[string]*time.Timer),
		handlers:        make(map[models.ActionType]ActionFunc),
	}
}

// Handle registers the callback for an action type. Registering again
// replaces the previous callback.
func (b *Bus) Handle(actionType models.ActionType, fn ActionFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[actionType] = fn
}

// Post assigns the message an id, fills in scope and duration defaults,
// appends it to the queue and arms its expiry timer. The assigned id is
// returned.
func (b *Bus) Post(msg models.SnackbarMessage) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg.ID = uuid.NewString()

	if msg.Scope == "" {
		msg.Scope = models.ScopeGlobal
	}
	if msg.Duration <= 0 {
		msg.Duration = b.defaultDuration
	}

	b.messages = append(b.messages, msg)

	id := msg.ID
	b.timers[id] = time.AfterFunc(msg.Duration, func() {
		b.expire(id)
	})

	return id
}

// Dismiss removes a message immediately, regardless of remaining duration.
func (b *Bus) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.removeLocked(id)
}

// Invoke triggers the action carried by the given message, then dismisses
// it. Messages without an action are just dismissed.
func (b *Bus) Invoke(id string) bool {
	b.mu.Lock()

	var action *models.MessageAction

	for _, msg := range b.messages {
		if msg.ID == id {
			action = msg.Action
			break
		}
	}

	var fn ActionFunc
	var actionID string

	if action != nil {
		fn = b.handlers[action.ActionType]
		actionID = action.ActionID

		if fn == nil {
			b.log.Warn("no handler for action type",
				slog.String("action_type", string(action.ActionType)),
			)
		}
	}

	removed := b.removeLocked(id)
	b.mu.Unlock()

	// The callback runs outside the lock so it can post follow-up messages.
	if fn != nil {
		fn(actionID)
	}

	return removed
}

// Global returns the messages visible in the global presentation context
// (every scope except modal-only).
func (b *Bus) Global() []models.SnackbarMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.SnackbarMessage, 0, len(b.messages))
	for _, msg := range b.messages {
		if msg.Scope != models.ScopeModal {
			out = append(out, msg)
		}
	}

	return out
}

// Modal returns the messages visible in a modal presentation context.
func (b *Bus) Modal() []models.SnackbarMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.SnackbarMessage, 0, len(b.messages))
	for _, msg := range b.messages {
		if msg.Scope == models.ScopeModal || msg.Scope == models.ScopeBoth {
			out = append(out, msg)
		}
	}

	return out
}

// All returns every queued message regardless of scope.
func (b *Bus) All() []models.SnackbarMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.SnackbarMessage, len(b.messages))
	copy(out, b.messages)

	return out
}

// Clear drops all messages and stops their timers.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}

	b.messages = nil
}

func (b *Bus) expire(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.removeLocked(id)
}

// removeLocked must be called with b.mu held.
func (b *Bus) removeLocked(id string) bool {
	if timer, ok := b.timers[id]; ok {
		timer.Stop()
		delete(b.timers, id)
	}

	for i, msg := range b.messages {
		if msg.ID == id {
			b.messages = append(b.messages[:i], b.messages[i+1:]...)
			return true
		}
	}

	return false
}
