package domain

import (
	"strings"

	dErrors "people/pkg/domain-errors"
)

// Enumerations shared with the command surface. Every parser goes through
// canonicalize, so "Non-Binary", "non binary" and "NON_BINARY" all resolve to
// the same token.
//
// Usage: construct via the Parse functions at trust boundaries; direct casting
// bypasses the allowlist.

// Gender of a person.
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non_binary"
)

var validGenders = map[Gender]bool{
	GenderMale:      true,
	GenderFemale:    true,
	GenderNonBinary: true,
}

// PreferredGenderType is the active case of a preferred gender.
type PreferredGenderType string

const (
	PreferredGenderMale      PreferredGenderType = "male"
	PreferredGenderFemale    PreferredGenderType = "female"
	PreferredGenderNonBinary PreferredGenderType = "non_binary"
	PreferredGenderOther     PreferredGenderType = "other"
)

var validPreferredGenderTypes = map[PreferredGenderType]bool{
	PreferredGenderMale:      true,
	PreferredGenderFemale:    true,
	PreferredGenderNonBinary: true,
	PreferredGenderOther:     true,
}

// AddressType classifies a dwelling.
type AddressType string

const (
	AddressTypeHouse     AddressType = "house"
	AddressTypeApartment AddressType = "apartment"
	AddressTypeCondo     AddressType = "condo"
	AddressTypeFlat      AddressType = "flat"
	AddressTypeOther     AddressType = "other"
)

var validAddressTypes = map[AddressType]bool{
	AddressTypeHouse:     true,
	AddressTypeApartment: true,
	AddressTypeCondo:     true,
	AddressTypeFlat:      true,
	AddressTypeOther:     true,
}

// PayType describes how a rate of pay is expressed.
type PayType string

const (
	PayTypeSalary PayType = "salary"
	PayTypeHourly PayType = "hourly"
)

var validPayTypes = map[PayType]bool{
	PayTypeSalary: true,
	PayTypeHourly: true,
}

// RelationshipType describes how the related person relates to the owner.
type RelationshipType string

const (
	RelationshipSpouse      RelationshipType = "spouse"
	RelationshipChild       RelationshipType = "child"
	RelationshipAunt        RelationshipType = "aunt"
	RelationshipUncle       RelationshipType = "uncle"
	RelationshipNiece       RelationshipType = "niece"
	RelationshipNephew      RelationshipType = "nephew"
	RelationshipGrandparent RelationshipType = "grandparent"
	RelationshipGrandchild  RelationshipType = "grandchild"
	RelationshipCousin      RelationshipType = "cousin"
)

// relationshipOrder is declaration order; rendering sorts by it.
var relationshipOrder = map[RelationshipType]int{
	RelationshipSpouse:      0,
	RelationshipChild:       1,
	RelationshipAunt:        2,
	RelationshipUncle:       3,
	RelationshipNiece:       4,
	RelationshipNephew:      5,
	RelationshipGrandparent: 6,
	RelationshipGrandchild:  7,
	RelationshipCousin:      8,
}

// RelationshipTypes returns every relationship type in declaration order.
func RelationshipTypes() []RelationshipType {
	return []RelationshipType{
		RelationshipSpouse, RelationshipChild, RelationshipAunt, RelationshipUncle,
		RelationshipNiece, RelationshipNephew, RelationshipGrandparent,
		RelationshipGrandchild, RelationshipCousin,
	}
}

// AddressTypes returns every address type in declaration order.
func AddressTypes() []AddressType {
	return []AddressType{AddressTypeHouse, AddressTypeApartment, AddressTypeCondo, AddressTypeFlat, AddressTypeOther}
}

func ParseGender(s string) (Gender, error) {
	return parseEnum(s, "gender", validGenders)
}

func ParsePreferredGenderType(s string) (PreferredGenderType, error) {
	return parseEnum(s, "preferred gender", validPreferredGenderTypes)
}

func ParseAddressType(s string) (AddressType, error) {
	return parseEnum(s, "address type", validAddressTypes)
}

func ParsePayType(s string) (PayType, error) {
	return parseEnum(s, "pay type", validPayTypes)
}

func ParseRelationshipType(s string) (RelationshipType, error) {
	valid := make(map[RelationshipType]bool, len(relationshipOrder))
	for t := range relationshipOrder {
		valid[t] = true
	}
	return parseEnum(s, "relationship type", valid)
}

func (g Gender) IsValid() bool              { return validGenders[g] }
func (t PreferredGenderType) IsValid() bool { return validPreferredGenderTypes[t] }
func (t AddressType) IsValid() bool         { return validAddressTypes[t] }
func (t PayType) IsValid() bool             { return validPayTypes[t] }
func (t RelationshipType) IsValid() bool    { return t.Ordinal() >= 0 }

func (g Gender) String() string              { return string(g) }
func (t PreferredGenderType) String() string { return string(t) }
func (t AddressType) String() string         { return string(t) }
func (t PayType) String() string             { return string(t) }
func (t RelationshipType) String() string    { return string(t) }

// Ordinal returns the declaration index of the type, or -1 when unknown.
func (t RelationshipType) Ordinal() int {
	if o, ok := relationshipOrder[t]; ok {
		return o
	}
	return -1
}

// canonicalize case-folds and normalizes separators to a single token form.
func canonicalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func parseEnum[T ~string](s, label string, valid map[T]bool) (T, error) {
	if strings.TrimSpace(s) == "" {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", label)
	}
	v := T(canonicalize(s))
	if !valid[v] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s: %s", label, s)
	}
	return v, nil
}
