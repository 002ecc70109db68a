package store

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnknownKind = errors.New("unknown store kind")
)

const (
	KindDiscard = "discard"
	KindMemory  = "memory"
)

// FollowStore receives follow state changes made in the list screen.
type FollowStore interface {
	// SetFollowed records the follow state of the person with the given ID.
	SetFollowed(id uuid.UUID, followed bool) error
	// Followed returns the recorded follow state, or ErrNotFound if nothing was recorded.
	Followed(id uuid.UUID) (bool, error)
}

// Discard accepts every change and forgets it right away.
var Discard FollowStore = discard{}

type discard struct{}

func (discard) SetFollowed(uuid.UUID, bool) error {
	return nil
}

func (discard) Followed(uuid.UUID) (bool, error) {
	return false, ErrNotFound
}
