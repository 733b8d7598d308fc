// Package memstore provides an in-memory implementation of BoardRepository.
package memstore

import (
	"sync"

	"github.com/runoshun/taskflow/internal/domain"
)

// Ensure Store implements domain.BoardRepository.
var _ domain.BoardRepository = (*Store)(nil)

// Store keeps the current board in memory. Nothing is written to disk.
// Bubble Tea runs commands on their own goroutines, so access is guarded.
type Store struct {
	board domain.Board
	mu    sync.RWMutex
}

// New creates a Store holding a copy of the initial board.
func New(initial domain.Board) *Store {
	return &Store{board: initial.Clone()}
}

// Load returns a copy of the current board.
func (s *Store) Load() (domain.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone(), nil
}

// Update applies fn to the current board under a single write lock and
// stores the result unless fn returns an error.
func (s *Store) Update(fn func(domain.Board) (domain.Board, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.board.Clone())
	if err != nil {
		return err
	}
	s.board = next.Clone()
	return nil
}
