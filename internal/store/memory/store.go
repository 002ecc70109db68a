// Package memory provides a FollowStore that keeps follow state for the lifetime of the process.
package memory

import (
	"github.com/google/uuid"

	"github.com/loog-project/followlist/internal/store"
)

// Store is owned by the UI loop and is not safe for concurrent use.
type Store struct {
	followed map[uuid.UUID]bool
}

var _ store.FollowStore = (*Store)(nil)

func New() *Store {
	return &Store{
		followed: make(map[uuid.UUID]bool),
	}
}

func (s *Store) SetFollowed(id uuid.UUID, followed bool) error {
	s.followed[id] = followed
	return nil
}

func (s *Store) Followed(id uuid.UUID) (bool, error) {
	followed, ok := s.followed[id]
	if !ok {
		return false, store.ErrNotFound
	}
	return followed, nil
}

// Len returns the number of people with a recorded follow state.
func (s *Store) Len() int {
	return len(s.followed)
}
