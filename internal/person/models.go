package person

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("person name must not be empty")

// idNamespace scopes the name-derived IDs so that the same name always yields the same ID.
var idNamespace = uuid.MustParse("5b0a3c1e-8f4d-4c61-9f0e-2d6a7b1c9e34")

type Gender uint8

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// Person is the source of truth for a single user. It is never mutated after construction.
type Person struct {
	ID         uuid.UUID
	Name       string
	Gender     Gender
	IsFollowed bool
	Height     float64
}

// New creates a Person. New people are never followed.
func New(name string, gender Gender, height float64) Person {
	return Person{
		ID:         IDFor(name),
		Name:       name,
		Gender:     gender,
		IsFollowed: false,
		Height:     height,
	}
}

// NewLegacy behaves like New but drops the passed gender and always records Male,
// which is what the first version of the list screen did.
func NewLegacy(name string, _ Gender, height float64) Person {
	return New(name, Male, height)
}

// IDFor returns the stable ID of the person with the given name.
func IDFor(name string) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte(name))
}

func Validate(p Person) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	return nil
}
