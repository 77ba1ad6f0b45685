package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	dErrors "people/pkg/domain-errors"
)

// IDMaxLength bounds every identifier accepted at the boundary.
const IDMaxLength = 50

// Typed identifiers. Values are opaque strings; the service generates them as
// canonical UUID strings, but callers must not rely on the format.
type (
	PersonID       string
	AddressID      string
	EmploymentID   string
	RelationshipID string
)

func (id PersonID) String() string       { return string(id) }
func (id AddressID) String() string      { return string(id) }
func (id EmploymentID) String() string   { return string(id) }
func (id RelationshipID) String() string { return string(id) }

// IsNil reports whether the id is absent (empty or whitespace only).
func (id PersonID) IsNil() bool       { return strings.TrimSpace(string(id)) == "" }
func (id AddressID) IsNil() bool      { return strings.TrimSpace(string(id)) == "" }
func (id EmploymentID) IsNil() bool   { return strings.TrimSpace(string(id)) == "" }
func (id RelationshipID) IsNil() bool { return strings.TrimSpace(string(id)) == "" }

// NewID returns a fresh random 128-bit identifier in canonical form.
func NewID() string {
	return uuid.NewString()
}

// ParsePersonID validates an identifier received at a trust boundary.
func ParsePersonID(s string) (PersonID, error) {
	return parseID[PersonID](s, "person id")
}

func ParseAddressID(s string) (AddressID, error) {
	return parseID[AddressID](s, "address id")
}

func ParseEmploymentID(s string) (EmploymentID, error) {
	return parseID[EmploymentID](s, "employment id")
}

func ParseRelationshipID(s string) (RelationshipID, error) {
	return parseID[RelationshipID](s, "relationship id")
}

func parseID[T ~string](s, label string) (T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", label)
	}
	if !utf8.ValidString(s) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s must be valid UTF-8", label)
	}
	if utf8.RuneCountInString(s) > IDMaxLength {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s must be at most %d characters", label, IDMaxLength)
	}
	return T(s), nil
}
