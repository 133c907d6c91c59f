// Package history defines persistence of past analyses.
package history

import (
	"context"
	"errors"

	"textlens/internal/domain"
)

// ErrNotFound is returned by Get for an unknown analysis ID.
var ErrNotFound = errors.New("analysis not found")

// Store persists analyses and lists them newest first.
type Store interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, analysis domain.Analysis) error
	List(ctx context.Context, limit int) ([]domain.Analysis, error)
	Get(ctx context.Context, id string) (*domain.Analysis, error)
	Clear(ctx context.Context) error
	Close() error
}
