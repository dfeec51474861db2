package tokenstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"deskhub/domain/ports"
	"deskhub/pkg/apperrors"
)

// LocalStore keeps token blobs as files under a base directory.
type LocalStore struct {
	basePath string
}

func NewLocalStore(basePath string) (ports.TokenStore, error) {
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create token dir: %w", err)
	}
	return &LocalStore{basePath: basePath}, nil
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

func (s *LocalStore) Write(ctx context.Context, key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o600)
}

func (s *LocalStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound("token")
		}
		return nil, err
	}
	return data, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
