package models

import (
	"time"

	id "people/pkg/domain"
)

// Person is the root of every owned record.
//
// Invariants (enforced by validation before a record is admitted):
//   - FirstName and LastName are non-blank, at most 100 characters
//   - MiddleName and PicturePath are optional; present values are non-blank
//   - DateOfBirth is set and not in the future
//   - Gender is one of male, female, non_binary
//   - PreferredGender carries a label only in its Other case
//
// Records are values: an update replaces the whole record.
type Person struct {
	ID              id.PersonID
	FirstName       string
	MiddleName      string
	LastName        string
	DateOfBirth     time.Time
	Gender          id.Gender
	PreferredGender PreferredGender
	PicturePath     string
}

// DisplayName renders "Last, First Middle".
func (p Person) DisplayName() string {
	name := p.LastName + ", " + p.FirstName
	if p.MiddleName != "" {
		name += " " + p.MiddleName
	}
	return name
}

// WithPicture returns a copy of p pointing at a new picture.
func (p Person) WithPicture(path string) Person {
	p.PicturePath = path
	return p
}
