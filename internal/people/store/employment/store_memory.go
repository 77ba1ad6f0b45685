package employment

import (
	"context"

	"people/internal/people/models"
	"people/internal/people/store/scoped"
	id "people/pkg/domain"
)

// InMemory keeps each person's employment history in its own bucket.
type InMemory struct {
	records *scoped.Store[id.PersonID, id.EmploymentID, models.Employment]
}

func New() *InMemory {
	return &InMemory{records: scoped.New[id.PersonID, id.EmploymentID, models.Employment]()}
}

func (s *InMemory) Create(_ context.Context, r models.Employment) error {
	return s.records.Insert(r.PersonID, r.ID, r)
}

func (s *InMemory) Update(_ context.Context, r models.Employment) error {
	return s.records.Replace(r.PersonID, r.ID, r)
}

func (s *InMemory) Delete(_ context.Context, personID id.PersonID, employmentID id.EmploymentID) (models.Employment, error) {
	return s.records.Remove(personID, employmentID)
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID, employmentID id.EmploymentID) (models.Employment, error) {
	return s.records.Get(personID, employmentID)
}

func (s *InMemory) ListByPerson(_ context.Context, personID id.PersonID) ([]models.Employment, error) {
	return s.records.List(personID), nil
}

func (s *InMemory) Exists(_ context.Context, personID id.PersonID, employmentID id.EmploymentID) (bool, error) {
	return s.records.Has(personID, employmentID), nil
}

// ListAll feeds the company roll-up, which spans every person.
func (s *InMemory) ListAll(_ context.Context) ([]models.Employment, error) {
	return s.records.All(), nil
}

func (s *InMemory) DeleteAllForPerson(_ context.Context, personID id.PersonID) (int, error) {
	return s.records.Drop(personID), nil
}
