package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"people/internal/audit"
	"people/internal/people/metrics"
	"people/internal/people/models"
	"people/internal/people/validation"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
	"people/pkg/requestcontext"
)

// CreatePerson admits a new person under a generated id. The caller must
// leave ID empty.
func (s *Service) CreatePerson(ctx context.Context, p models.Person) (*models.Person, error) {
	if err := rejectProvidedID(string(p.ID), "person id"); err != nil {
		return nil, err
	}
	p.ID = id.PersonID(s.newID())
	if err := validation.ValidatePerson(p, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	taken, err := s.people.Exists(ctx, p.ID)
	if err := rejectTaken(taken, err, "person id already exists"); err != nil {
		return nil, err
	}
	if err := s.people.Create(ctx, p); err != nil {
		return nil, wrapStoreErr(err, "person", "create")
	}

	s.incrementCreated(metrics.EntityPerson)
	s.logAudit(ctx, audit.EventPersonCreated, "person_id", p.ID.String())
	return &p, nil
}

// UpdatePerson replaces a stored person with p.
func (s *Service) UpdatePerson(ctx context.Context, p models.Person) (*models.Person, error) {
	if err := validation.ValidatePerson(p, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.requirePerson(ctx, p.ID); err != nil {
		return nil, err
	}
	if err := s.people.Update(ctx, p); err != nil {
		return nil, wrapStoreErr(err, "person", "update")
	}

	s.logAudit(ctx, audit.EventPersonUpdated, "person_id", p.ID.String())
	return &p, nil
}

// SetPicture points an existing person at a new picture, keeping every
// other field.
func (s *Service) SetPicture(ctx context.Context, personID id.PersonID, path string) (*models.Person, error) {
	current, err := s.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return s.UpdatePerson(ctx, current.WithPicture(path))
}

// DeletePerson removes a person and everything that refers to them.
//
// The cascade is a sequence of independent removals: addresses, employments,
// relationships the person owns, relationships naming the person, and
// finally the person. A failure part-way leaves earlier removals in place.
func (s *Service) DeletePerson(ctx context.Context, personID id.PersonID) (_ *models.Person, err error) {
	ctx, span := s.startSpan(ctx, "people.DeletePerson")
	span.SetAttributes(attribute.String("person_id", personID.String()))
	defer func() { endSpan(span, err) }()

	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}

	steps := []struct {
		entity string
		remove func(context.Context, id.PersonID) (int, error)
	}{
		{metrics.EntityAddress, s.addresses.DeleteAllForPerson},
		{metrics.EntityEmployment, s.employments.DeleteAllForPerson},
		{metrics.EntityRelationship, s.relationships.DeleteAllForPerson},
		{metrics.EntityRelationship, s.relationships.DeleteAllRelatedTo},
	}
	for _, step := range steps {
		n, err := step.remove(ctx, personID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove "+step.entity+" records")
		}
		s.addCascadeRemoved(step.entity, n)
		s.logDebug(ctx, "cascade removed records", "person_id", personID.String(), "entity", step.entity, "count", n)
	}

	removed, err := s.people.Delete(ctx, personID)
	if err != nil {
		return nil, wrapStoreErr(err, "person", "delete")
	}

	s.incrementDeleted(metrics.EntityPerson)
	s.logAudit(ctx, audit.EventPersonDeleted, "person_id", personID.String())
	return &removed, nil
}

func (s *Service) GetPerson(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	p, err := s.people.FindByID(ctx, personID)
	if err != nil {
		return nil, wrapStoreErr(err, "person", "load")
	}
	return &p, nil
}

func (s *Service) ListPeople(ctx context.Context) ([]*models.Person, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list people")
	}
	return pointers(people), nil
}

// pointers adapts a snapshot of values to the pointer slices callers receive.
func pointers[T any](values []T) []*T {
	out := make([]*T, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}
