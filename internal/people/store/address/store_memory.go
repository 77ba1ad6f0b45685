package address

import (
	"context"

	"people/internal/people/models"
	"people/internal/people/store/scoped"
	id "people/pkg/domain"
)

// InMemory stores addresses in per-person buckets. Ids are unique within a
// person; the same id may appear under two different people.
type InMemory struct {
	records *scoped.Store[id.PersonID, id.AddressID, models.Address]
}

func New() *InMemory {
	return &InMemory{records: scoped.New[id.PersonID, id.AddressID, models.Address]()}
}

func (s *InMemory) Create(_ context.Context, r models.Address) error {
	return s.records.Insert(r.PersonID, r.ID, r)
}

func (s *InMemory) Update(_ context.Context, r models.Address) error {
	return s.records.Replace(r.PersonID, r.ID, r)
}

func (s *InMemory) Delete(_ context.Context, personID id.PersonID, addressID id.AddressID) (models.Address, error) {
	return s.records.Remove(personID, addressID)
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID, addressID id.AddressID) (models.Address, error) {
	return s.records.Get(personID, addressID)
}

func (s *InMemory) ListByPerson(_ context.Context, personID id.PersonID) ([]models.Address, error) {
	return s.records.List(personID), nil
}

func (s *InMemory) Exists(_ context.Context, personID id.PersonID, addressID id.AddressID) (bool, error) {
	return s.records.Has(personID, addressID), nil
}

// ListAll returns every address across all people.
func (s *InMemory) ListAll(_ context.Context) ([]models.Address, error) {
	return s.records.All(), nil
}

// DeleteAllForPerson drops the person's bucket and reports how many records it held.
func (s *InMemory) DeleteAllForPerson(_ context.Context, personID id.PersonID) (int, error) {
	return s.records.Drop(personID), nil
}
