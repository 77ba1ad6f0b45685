package audit

import (
	"context"

	id "people/pkg/domain"
	"people/pkg/requestcontext"
)

// Store is an append-only sink for events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByPerson(ctx context.Context, personID id.PersonID) ([]Event, error)
	ListAll(ctx context.Context) ([]Event, error)
}

// Publisher stamps events and hands them to the store.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = requestcontext.Now(ctx)
	}
	if base.RequestID == "" {
		base.RequestID = requestcontext.RequestID(ctx)
	}
	return p.store.Append(ctx, base)
}

func (p *Publisher) List(ctx context.Context, personID id.PersonID) ([]Event, error) {
	return p.store.ListByPerson(ctx, personID)
}

func (p *Publisher) ListAll(ctx context.Context) ([]Event, error) {
	return p.store.ListAll(ctx)
}
