package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"people/internal/audit"
	"people/internal/people/metrics"
	"people/internal/people/models"
	"people/internal/people/validation"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

// CreateAddress adds an address for an existing person. The owner is checked
// before the fields so a missing person is reported regardless of what else
// is wrong with the request.
func (s *Service) CreateAddress(ctx context.Context, a models.Address) (*models.Address, error) {
	if err := rejectProvidedID(string(a.ID), "address id"); err != nil {
		return nil, err
	}
	if err := s.requirePerson(ctx, a.PersonID); err != nil {
		return nil, err
	}
	a.ID = id.AddressID(s.newID())
	if err := validation.ValidateAddress(a); err != nil {
		return nil, err
	}
	taken, err := s.addresses.Exists(ctx, a.PersonID, a.ID)
	if err := rejectTaken(taken, err, "address id already exists for person"); err != nil {
		return nil, err
	}
	if err := s.addresses.Create(ctx, a); err != nil {
		return nil, wrapStoreErr(err, "address", "create")
	}

	s.incrementCreated(metrics.EntityAddress)
	s.logAudit(ctx, audit.EventAddressCreated, "person_id", a.PersonID.String(), "subject", a.ID.String())
	return &a, nil
}

func (s *Service) UpdateAddress(ctx context.Context, a models.Address) (*models.Address, error) {
	if err := s.requirePerson(ctx, a.PersonID); err != nil {
		return nil, err
	}
	if err := validation.ValidateAddress(a); err != nil {
		return nil, err
	}
	ok, err := s.addresses.Exists(ctx, a.PersonID, a.ID)
	if err := requireRecord(ok, err, "address"); err != nil {
		return nil, err
	}
	if err := s.addresses.Update(ctx, a); err != nil {
		return nil, wrapStoreErr(err, "address", "update")
	}

	s.logAudit(ctx, audit.EventAddressUpdated, "person_id", a.PersonID.String(), "subject", a.ID.String())
	return &a, nil
}

func (s *Service) DeleteAddress(ctx context.Context, personID id.PersonID, addressID id.AddressID) (*models.Address, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	removed, err := s.addresses.Delete(ctx, personID, addressID)
	if err != nil {
		return nil, wrapStoreErr(err, "address", "delete")
	}

	s.incrementDeleted(metrics.EntityAddress)
	s.logAudit(ctx, audit.EventAddressDeleted, "person_id", personID.String(), "subject", addressID.String())
	return &removed, nil
}

func (s *Service) GetAddress(ctx context.Context, personID id.PersonID, addressID id.AddressID) (*models.Address, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	a, err := s.addresses.FindByID(ctx, personID, addressID)
	if err != nil {
		return nil, wrapStoreErr(err, "address", "load")
	}
	return &a, nil
}

func (s *Service) ListAddresses(ctx context.Context, personID id.PersonID) ([]*models.Address, error) {
	if err := s.requirePerson(ctx, personID); err != nil {
		return nil, err
	}
	list, err := s.addresses.ListByPerson(ctx, personID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list addresses")
	}
	return pointers(list), nil
}

// ListAddressesFiltered searches every person's addresses. Filters are
// trimmed and compared case-insensitively; blank filters are ignored and
// the rest combine with AND. Street and StreetContains are exclusive.
func (s *Service) ListAddressesFiltered(ctx context.Context, f models.AddressFilter) (_ []*models.Address, err error) {
	ctx, span := s.startSpan(ctx, "people.ListAddressesFiltered")
	defer func() { endSpan(span, err) }()

	street := strings.TrimSpace(f.Street)
	contains := strings.TrimSpace(f.StreetContains)
	town := strings.TrimSpace(f.Town)
	state := strings.TrimSpace(f.State)
	if street != "" && contains != "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "street and street contains filters are mutually exclusive")
	}

	all, err := s.addresses.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list addresses")
	}

	matched := make([]models.Address, 0, len(all))
	for _, a := range all {
		switch {
		case street != "" && !strings.EqualFold(a.Street, street):
		case contains != "" && !strings.Contains(strings.ToLower(a.Street), strings.ToLower(contains)):
		case town != "" && !strings.EqualFold(a.Town, town):
		case state != "" && !strings.EqualFold(a.State, state):
		default:
			matched = append(matched, a)
		}
	}
	span.SetAttributes(attribute.Int("addresses.scanned", len(all)), attribute.Int("addresses.matched", len(matched)))
	return pointers(matched), nil
}
