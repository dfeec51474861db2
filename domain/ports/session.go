package ports

import (
	"context"
	"time"
)

// SessionStore maps opaque session IDs to user IDs with a TTL. Deleting an
// entry revokes the session regardless of cookie expiry.
type SessionStore interface {
	Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
