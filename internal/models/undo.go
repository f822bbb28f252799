package models

type UndoType string

const (
	UndoRegistration UndoType = "REGISTRATION"
	UndoCancellation UndoType = "CANCELLATION"
	UndoEventUpdate  UndoType = "EVENT_UPDATE"
)

// UndoAction captures the full pre-mutation snapshot of an event, so a
// revert restores every field rather than just the capacity counters.
type UndoAction struct {
	Seq       uint64   `json:"seq"` // monotonic push order
	ID        string   `json:"id"`  // affected event id
	Type      UndoType `json:"type"`
	Previous  Event    `json:"previous"`
	Timestamp int64    `json:"timestamp"` // unix milliseconds
}

type ConflictPayload struct {
	ConflictID  string `json:"conflict_id"`
	ClientEvent Event  `json:"client_event"`
	ServerEvent Event  `json:"server_event"`
}
