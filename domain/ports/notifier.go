package ports

import (
	"context"
	"time"
)

type Notification struct {
	Kind    string    `json:"kind"` // task, event
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	When    time.Time `json:"when"`
	Message string    `json:"message"`
}

// Notifier delivers reminder notifications. Implementations are best-effort;
// a failed delivery must not stop the reminder pass.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
