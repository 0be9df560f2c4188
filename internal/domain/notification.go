package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationError NotificationKind = "error"
)

// Notification is a transient user-facing message. ID lets a UI deduplicate
// toasts that were delivered through more than one sink.
type Notification struct {
	ID        uuid.UUID
	Kind      NotificationKind
	Message   string
	CreatedAt time.Time
}

func NewErrorNotification(message string) Notification {
	return Notification{
		ID:        uuid.New(),
		Kind:      NotificationError,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
