package service

import (
	"context"

	"people/internal/audit"
	"people/internal/people/metrics"
	"people/internal/people/models"
	"people/internal/people/validation"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
	"people/pkg/requestcontext"
)

func (s *Service) CreateEmployment(ctx context.Context, e models.Employment) (*models.Employment, error) {
	if err := rejectProvidedID(string(e.ID), "employment id"); err != nil {
		return nil, err
	}
	if err := s.requirePerson(ctx, e.PersonID); err != nil {
		return nil, err
	}
	e.ID = id.EmploymentID(s.newID())
	if err := validation.ValidateEmployment(e, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	taken, err := s.employments.Exists(ctx, e.PersonID, e.ID)
	if err := rejectTaken(taken, err, "employment id already exists for person"); err != nil {
		return nil, err
	}
	if err := s.employments.Create(ctx, e); err != nil {
		return nil, wrapStoreErr(err, "employment", "create")
	}

	s.incrementCreated(metrics.EntityEmployment)
	s.logAudit(ctx, audit.EventEmploymentCreated, "person_id", e.PersonID.String(), "subject", e.ID.String())
	return &e, nil
}

func (s *Service) UpdateEmployment(ctx context.Context, e models.Employment) (*models.Employment, error) {
	if err := s.requirePerson(ctx, e.PersonID); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmployment(e, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	ok, err := s.employments.Exists(ctx, e.PersonID, e.ID)
	if err := requireRecord(ok, err, "employment"); err != nil {
		return nil, err
	}
	if err := s.employments.Update(ctx, e); err != nil {
		return nil, wrapStoreErr(err, "employment", "update")
	}

	s.logAudit(ctx, audit.EventEmploymentUpdated, "person_id", e.PersonID.String(), "subject", e.ID.String())
	return &e, nil
}

func (s *Service) DeleteEmployment(ctx context.Context, personID id.PersonID, employmentID id.EmploymentID) (*models.Employment, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	removed, err := s.employments.Delete(ctx, personID, employmentID)
	if err != nil {
		return nil, wrapStoreErr(err, "employment", "delete")
	}

	s.incrementDeleted(metrics.EntityEmployment)
	s.logAudit(ctx, audit.EventEmploymentDeleted, "person_id", personID.String(), "subject", employmentID.String())
	return &removed, nil
}

func (s *Service) GetEmployment(ctx context.Context, personID id.PersonID, employmentID id.EmploymentID) (*models.Employment, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	e, err := s.employments.FindByID(ctx, personID, employmentID)
	if err != nil {
		return nil, wrapStoreErr(err, "employment", "load")
	}
	return &e, nil
}

func (s *Service) ListEmployments(ctx context.Context, personID id.PersonID) ([]*models.Employment, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	list, err := s.employments.ListByPerson(ctx, personID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employments")
	}
	return pointers(list), nil
}

// ListAllEmployments returns every person's employment records.
func (s *Service) ListAllEmployments(ctx context.Context) ([]*models.Employment, error) {
	list, err := s.employments.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employments")
	}
	return pointers(list), nil
}
