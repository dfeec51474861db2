package ports

import "context"

// TokenStore persists serialized OAuth credentials outside the database.
// Keys are derived from the account email.
type TokenStore interface {
	Write(ctx context.Context, key string, data []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
