package memory

import (
	"context"
	"sync"

	"textlens/internal/domain"
	"textlens/internal/history"
)

// Store keeps analyses in process memory. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	analyses []domain.Analysis
}

func NewStore() *Store { return &Store{} }

func (s *Store) Init(ctx context.Context) error { return nil }

func (s *Store) Save(ctx context.Context, analysis domain.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.analyses {
		if s.analyses[i].ID == analysis.ID {
			s.analyses[i] = analysis
			return nil
		}
	}
	s.analyses = append(s.analyses, analysis)
	return nil
}

// List returns up to limit analyses, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.analyses)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.Analysis, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.analyses[i])
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.analyses {
		if s.analyses[i].ID == id {
			a := s.analyses[i]
			return &a, nil
		}
	}
	return nil, history.ErrNotFound
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = nil
	return nil
}

func (s *Store) Close() error { return nil }
