package models

import "time"

type MessageType string

const (
	MessageSuccess MessageType = "success"
	MessageError   MessageType = "error"
	MessageInfo    MessageType = "info"
)

type MessageScope string

const (
	ScopeGlobal MessageScope = "global"
	ScopeModal  MessageScope = "modal"
	ScopeBoth   MessageScope = "both"
)

type ActionType string

const (
	ActionUndo    ActionType = "UNDO"
	ActionRetry   ActionType = "RETRY"
	ActionDismiss ActionType = "DISMISS"
)

type MessageAction struct {
	Label      string     `json:"label"`
	ActionType ActionType `json:"action_type"`
	ActionID   string     `json:"action_id,omitempty"`
}

type SnackbarMessage struct {
	ID       string         `json:"id"`
	Message  string         `json:"message"`
	Type     MessageType    `json:"type"`
	Scope    MessageScope   `json:"scope"`
	Action   *MessageAction `json:"action,omitempty"`
	Duration time.Duration  `json:"duration"`
}
