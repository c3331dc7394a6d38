package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Well-known keys.
const (
	KeyTheme = "theme"
	KeyTasks = "tasks"
)

// Store is a string-valued key-value store. Set replaces any prior value in
// a single write.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
