package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "people/pkg/domain-errors"
)

func TestParseID_BoundaryRules(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"Empty string", "", "", true},
		{"Whitespace only", "   ", "", true},
		{"Oversized input", strings.Repeat("a", IDMaxLength+1), "", true},
		{"Invalid UTF-8", string([]byte{0xff, 0xfe}), "", true},
		{"Opaque short id", "p1", "p1", false},
		{"Trims surrounding whitespace", "  p2 ", "p2", false},
		{"Generated id", "550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePersonID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PersonID(tt.want), got)
		})
	}
}

func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	inputs := []string{"", "valid-id", strings.Repeat("x", 60)}

	for _, input := range inputs {
		_, errPerson := ParsePersonID(input)
		_, errAddress := ParseAddressID(input)
		_, errEmployment := ParseEmploymentID(input)
		_, errRelationship := ParseRelationshipID(input)

		assert.Equal(t, errPerson == nil, errAddress == nil, "address id parsing diverged for %q", input)
		assert.Equal(t, errPerson == nil, errEmployment == nil, "employment id parsing diverged for %q", input)
		assert.Equal(t, errPerson == nil, errRelationship == nil, "relationship id parsing diverged for %q", input)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.False(t, PersonID(a).IsNil())
	assert.True(t, PersonID(" ").IsNil())
}
