package models

import id "people/pkg/domain"

// PreferredGender is a closed sum type: Male, Female, NonBinary, or
// Other(label). The zero value means "not provided".
type PreferredGender struct {
	kind  id.PreferredGenderType
	label string
}

// PreferredGenderOf builds the case for t. Passing PreferredGenderOther here
// yields an Other without a label, which validation rejects.
func PreferredGenderOf(t id.PreferredGenderType) PreferredGender {
	return PreferredGender{kind: t}
}

// PreferredGenderOther builds the Other case carrying a free-text label.
func PreferredGenderOther(label string) PreferredGender {
	return PreferredGender{kind: id.PreferredGenderOther, label: label}
}

// NewPreferredGender assembles a preferred gender from boundary input without
// judging it; validation decides whether the combination is allowed.
func NewPreferredGender(t id.PreferredGenderType, label string) PreferredGender {
	return PreferredGender{kind: t, label: label}
}

func (g PreferredGender) Type() id.PreferredGenderType { return g.kind }
func (g PreferredGender) Label() string                { return g.label }
func (g PreferredGender) IsOther() bool                { return g.kind == id.PreferredGenderOther }
func (g PreferredGender) IsZero() bool                 { return g.kind == "" && g.label == "" }

func (g PreferredGender) String() string {
	if g.IsOther() {
		return "other(" + g.label + ")"
	}
	return string(g.kind)
}
