// Package trainingtest provides an in-memory training.Store that counts every access.
package trainingtest

import (
	"context"
	"sync"

	"widgetbrain/training"
)

type Store struct {
	mu   sync.Mutex
	rows map[string]*string

	Reads  int
	Writes int

	ReadErr  error
	WriteErr error
	// AfterRead runs once the read has been served, before Get returns.
	AfterRead func()
}

var _ training.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{rows: map[string]*string{}}
}

// Seed adds a row. A nil context models a NULL column.
func (s *Store) Seed(widgetID string, value *string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[widgetID] = value
	return s
}

func (s *Store) Value(widgetID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.rows[widgetID]
	if !ok || v == nil {
		return "", ok
	}
	return *v, true
}

func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Reads + s.Writes
}

func (s *Store) GetContext(ctx context.Context, widgetID string) (string, error) {
	s.mu.Lock()
	s.Reads++
	if s.ReadErr != nil {
		s.mu.Unlock()
		return "", s.ReadErr
	}
	v, ok := s.rows[widgetID]
	hook := s.AfterRead
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	if !ok {
		return "", training.ErrNotFound
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func (s *Store) SetContext(ctx context.Context, widgetID string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if _, ok := s.rows[widgetID]; !ok {
		return training.ErrNotFound
	}
	s.rows[widgetID] = &value
	return nil
}

func Ptr(s string) *string { return &s }
