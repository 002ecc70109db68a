package person

import "fmt"

const (
	// DatasetSize is the number of people Generate produces.
	DatasetSize = 20
	// DefaultHeight is assigned to every generated person.
	DefaultHeight = 2.3
)

// Constructor builds a Person; New and NewLegacy both qualify.
type Constructor func(name string, gender Gender, height float64) Person

// Generate returns the fixed synthetic dataset: "user 1" to "user 20", female for odd
// and male for even numbers. The result is the same on every call.
func Generate() []Person {
	return GenerateWith(New)
}

// GenerateWith builds the same dataset as Generate through newPerson.
func GenerateWith(newPerson Constructor) []Person {
	people := make([]Person, 0, DatasetSize)
	for i := 1; i <= DatasetSize; i++ {
		gender := Female
		if i%2 == 0 {
			gender = Male
		}
		people = append(people, newPerson(fmt.Sprintf("user %d", i), gender, DefaultHeight))
	}
	return people
}
