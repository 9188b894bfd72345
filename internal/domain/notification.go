package domain

import "time"

// Notification types.
const (
	NotifInfo    = "info"
	NotifSuccess = "success"
	NotifWarning = "warning"
	NotifError   = "error"
)

// Notification priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Notification is a single alert surfaced to the operator. CreatedAt is set
// once at insertion and never changes; Read only ever flips false -> true.
type Notification struct {
	NotificationID string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	Read           bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
	Priority       string    `json:"priority,omitempty"`
	ActionRequired bool      `json:"action_required,omitempty"`
}

// Important reports whether the notification belongs in the "important"
// filter: high priority or explicitly flagged as requiring action.
func (n Notification) Important() bool {
	return n.Priority == PriorityHigh || n.ActionRequired
}

// NotificationDraft is the caller-supplied part of a new notification.
// The store assigns id, creation time and the unread flag.
type NotificationDraft struct {
	Title          string `json:"title" validate:"required"`
	Message        string `json:"message" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=info success warning error"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low medium high"`
	ActionRequired bool   `json:"action_required"`
}
