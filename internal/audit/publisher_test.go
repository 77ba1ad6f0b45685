package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people/internal/audit"
	"people/internal/audit/store"
	id "people/pkg/domain"
	"people/pkg/requestcontext"
)

func TestPublisher_StampsFromRequestContext(t *testing.T) {
	pub := audit.NewPublisher(store.NewInMemoryStore())
	fixed := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)
	ctx = requestcontext.WithRequestID(ctx, "req-1")

	require.NoError(t, pub.Emit(ctx, audit.Event{PersonID: "p1", Action: string(audit.EventPersonCreated)}))

	events, err := pub.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, "req-1", events[0].RequestID)
}

func TestPublisher_KeepsExplicitTimestamp(t *testing.T) {
	pub := audit.NewPublisher(store.NewInMemoryStore())
	stamp := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, pub.Emit(context.Background(), audit.Event{PersonID: "p1", Timestamp: stamp}))

	events, err := pub.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, stamp, events[0].Timestamp)
}

func TestInMemoryStore_FiltersByPerson(t *testing.T) {
	ctx := context.Background()
	s := store.NewInMemoryStore()
	for _, p := range []id.PersonID{"p1", "p2", "p1"} {
		require.NoError(t, s.Append(ctx, audit.Event{PersonID: p, Action: string(audit.EventAddressCreated)}))
	}

	events, err := s.ListByPerson(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, events, 2)

	none, err := s.ListByPerson(ctx, "p9")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	s.Clear()
	all, err = s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
