package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "people/pkg/domain-errors"
)

func TestParseGender_Canonicalization(t *testing.T) {
	tests := []struct {
		input string
		want  Gender
	}{
		{"male", GenderMale},
		{"FEMALE", GenderFemale},
		{"non-binary", GenderNonBinary},
		{"Non Binary", GenderNonBinary},
		{" NON_BINARY ", GenderNonBinary},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGender(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnums_RejectUnknownValues(t *testing.T) {
	cases := map[string]func(string) error{
		"gender": func(s string) error { _, err := ParseGender(s); return err },
		"preferred gender": func(s string) error {
			_, err := ParsePreferredGenderType(s)
			return err
		},
		"address type": func(s string) error { _, err := ParseAddressType(s); return err },
		"pay type":     func(s string) error { _, err := ParsePayType(s); return err },
		"relationship type": func(s string) error {
			_, err := ParseRelationshipType(s)
			return err
		},
	}
	for name, parse := range cases {
		t.Run(name, func(t *testing.T) {
			for _, input := range []string{"", "   ", "unknown"} {
				err := parse(input)
				require.Error(t, err, "input %q", input)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			}
		})
	}
}

func TestParseEnums_AcceptEveryDeclaredValue(t *testing.T) {
	for _, rt := range RelationshipTypes() {
		got, err := ParseRelationshipType(string(rt))
		require.NoError(t, err)
		assert.Equal(t, rt, got)
	}
	for _, at := range AddressTypes() {
		got, err := ParseAddressType(string(at))
		require.NoError(t, err)
		assert.Equal(t, at, got)
	}

	other, err := ParsePreferredGenderType("Other")
	require.NoError(t, err)
	assert.Equal(t, PreferredGenderOther, other)

	hourly, err := ParsePayType("HOURLY")
	require.NoError(t, err)
	assert.Equal(t, PayTypeHourly, hourly)
}

func TestRelationshipType_Ordinal(t *testing.T) {
	assert.Equal(t, 0, RelationshipSpouse.Ordinal())
	assert.Equal(t, 8, RelationshipCousin.Ordinal())
	assert.Equal(t, -1, RelationshipType("friend").Ordinal())
	assert.False(t, RelationshipType("friend").IsValid())
}
