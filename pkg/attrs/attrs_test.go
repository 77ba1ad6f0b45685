package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	kv := []any{"person_id", "p1", "count", 3, 42, "ignored", "dangling"}

	assert.Equal(t, "p1", ExtractString(kv, "person_id"))
	assert.Equal(t, "", ExtractString(kv, "missing"))
	assert.Equal(t, "", ExtractString(kv, "count"))
	assert.Equal(t, "", ExtractString(kv, "dangling"))

	n, ok := Extract[int](kv, "count")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}
