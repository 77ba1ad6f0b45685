package service

import (
	"context"

	"people/internal/audit"
	"people/internal/people/metrics"
	"people/internal/people/models"
	"people/internal/people/validation"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

// CreateRelationship links an existing person to another existing person.
// Relating a person to themselves is a bad request.
func (s *Service) CreateRelationship(ctx context.Context, r models.Relationship) (*models.Relationship, error) {
	if err := rejectProvidedID(string(r.ID), "relationship id"); err != nil {
		return nil, err
	}
	if err := s.requirePerson(ctx, r.PersonID); err != nil {
		return nil, err
	}
	r.ID = id.RelationshipID(s.newID())
	if err := validation.ValidateRelationship(r); err != nil {
		return nil, err
	}
	if err := s.requireRelatedPerson(ctx, r.RelatedPersonID); err != nil {
		return nil, err
	}
	taken, err := s.relationships.Exists(ctx, r.PersonID, r.ID)
	if err := rejectTaken(taken, err, "relationship id already exists for person"); err != nil {
		return nil, err
	}
	if err := s.relationships.Create(ctx, r); err != nil {
		return nil, wrapStoreErr(err, "relationship", "create")
	}

	s.incrementCreated(metrics.EntityRelationship)
	s.logAudit(ctx, audit.EventRelationshipCreated,
		"person_id", r.PersonID.String(),
		"subject", r.ID.String(),
		"related_person_id", r.RelatedPersonID.String())
	return &r, nil
}

func (s *Service) UpdateRelationship(ctx context.Context, r models.Relationship) (*models.Relationship, error) {
	if err := s.requirePerson(ctx, r.PersonID); err != nil {
		return nil, err
	}
	if err := validation.ValidateRelationship(r); err != nil {
		return nil, err
	}
	if err := s.requireRelatedPerson(ctx, r.RelatedPersonID); err != nil {
		return nil, err
	}
	ok, err := s.relationships.Exists(ctx, r.PersonID, r.ID)
	if err := requireRecord(ok, err, "relationship"); err != nil {
		return nil, err
	}
	if err := s.relationships.Update(ctx, r); err != nil {
		return nil, wrapStoreErr(err, "relationship", "update")
	}

	s.logAudit(ctx, audit.EventRelationshipUpdated, "person_id", r.PersonID.String(), "subject", r.ID.String())
	return &r, nil
}

func (s *Service) DeleteRelationship(ctx context.Context, personID id.PersonID, relationshipID id.RelationshipID) (*models.Relationship, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	removed, err := s.relationships.Delete(ctx, personID, relationshipID)
	if err != nil {
		return nil, wrapStoreErr(err, "relationship", "delete")
	}

	s.incrementDeleted(metrics.EntityRelationship)
	s.logAudit(ctx, audit.EventRelationshipDeleted, "person_id", personID.String(), "subject", relationshipID.String())
	return &removed, nil
}

func (s *Service) GetRelationship(ctx context.Context, personID id.PersonID, relationshipID id.RelationshipID) (*models.Relationship, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	r, err := s.relationships.FindByID(ctx, personID, relationshipID)
	if err != nil {
		return nil, wrapStoreErr(err, "relationship", "load")
	}
	return &r, nil
}

func (s *Service) ListRelationships(ctx context.Context, personID id.PersonID) ([]*models.Relationship, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	list, err := s.relationships.ListByPerson(ctx, personID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list relationships")
	}
	return pointers(list), nil
}

func (s *Service) requireRelatedPerson(ctx context.Context, related id.PersonID) error {
	ok, err := s.people.Exists(ctx, related)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up related person")
	}
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "related person not found")
	}
	return nil
}
