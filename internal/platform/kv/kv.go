package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	apperrors "pokerlog/internal/platform/errors"
)

// Store is the minimal key-value contract the repositories run on: string
// keys, string values, durable per device. Implementations must return
// apperrors.ErrNotFound for missing keys and apperrors.ErrStorageQuota when
// a write would exceed their capacity.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FileStore keeps one file per key under dir. MaxBytes caps the total size
// of all values; zero means unlimited.
type FileStore struct {
	dir      string
	maxBytes int64
}

func NewFileStore(dir string, maxBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir, maxBytes: maxBytes}, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("read key %s: %w", key, err)
	}
	return string(payload), nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if s.maxBytes > 0 {
		used, err := s.usedBytesExcept(path)
		if err != nil {
			return err
		}
		if used+int64(len(value)) > s.maxBytes {
			return fmt.Errorf("%w: key %s needs %d bytes", apperrors.ErrStorageQuota, key, len(value))
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit key %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: bad store key %q", apperrors.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) usedBytesExcept(skip string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("scan store dir: %w", err)
	}
	var total int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if path == skip {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
