package relationship

import (
	"context"

	"people/internal/people/models"
	"people/internal/people/store/scoped"
	id "people/pkg/domain"
)

// InMemory stores relationships under their owning person. The related
// person is only referenced; DeleteAllRelatedTo sweeps every owner for it.
type InMemory struct {
	records *scoped.Store[id.PersonID, id.RelationshipID, models.Relationship]
}

func New() *InMemory {
	return &InMemory{records: scoped.New[id.PersonID, id.RelationshipID, models.Relationship]()}
}

func (s *InMemory) Create(_ context.Context, r models.Relationship) error {
	return s.records.Insert(r.PersonID, r.ID, r)
}

func (s *InMemory) Update(_ context.Context, r models.Relationship) error {
	return s.records.Replace(r.PersonID, r.ID, r)
}

func (s *InMemory) Delete(_ context.Context, personID id.PersonID, relationshipID id.RelationshipID) (models.Relationship, error) {
	return s.records.Remove(personID, relationshipID)
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID, relationshipID id.RelationshipID) (models.Relationship, error) {
	return s.records.Get(personID, relationshipID)
}

func (s *InMemory) ListByPerson(_ context.Context, personID id.PersonID) ([]models.Relationship, error) {
	return s.records.List(personID), nil
}

func (s *InMemory) Exists(_ context.Context, personID id.PersonID, relationshipID id.RelationshipID) (bool, error) {
	return s.records.Has(personID, relationshipID), nil
}

func (s *InMemory) DeleteAllForPerson(_ context.Context, personID id.PersonID) (int, error) {
	return s.records.Drop(personID), nil
}

// DeleteAllRelatedTo removes relationships owned by anyone that name
// personID as the related person.
func (s *InMemory) DeleteAllRelatedTo(_ context.Context, personID id.PersonID) (int, error) {
	return s.records.RemoveWhere(func(r models.Relationship) bool {
		return r.RelatedPersonID == personID
	}), nil
}
