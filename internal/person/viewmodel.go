package person

import "github.com/google/uuid"

// ViewModel is the part of a Person a row needs to render itself.
// It is a disposable snapshot: flipping IsFollowed never writes back to the Person.
type ViewModel struct {
	ID         uuid.UUID
	Name       string
	IsFollowed bool
}

func NewViewModel(p Person) ViewModel {
	return ViewModel{
		ID:         p.ID,
		Name:       p.Name,
		IsFollowed: p.IsFollowed,
	}
}

// Toggled returns a copy with the follow state inverted.
func (vm ViewModel) Toggled() ViewModel {
	vm.IsFollowed = !vm.IsFollowed
	return vm
}
