package relationship

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"people/internal/people/models"
	id "people/pkg/domain"
	"people/pkg/platform/sentinel"
)

type InMemoryRelationshipStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemoryRelationshipStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func TestInMemoryRelationshipStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRelationshipStoreSuite))
}

func (s *InMemoryRelationshipStoreSuite) link(owner, related id.PersonID, relID id.RelationshipID, t id.RelationshipType) {
	s.Require().NoError(s.store.Create(s.ctx, models.Relationship{
		ID: relID, PersonID: owner, RelatedPersonID: related, Type: t,
	}))
}

func (s *InMemoryRelationshipStoreSuite) TestLifecycle() {
	s.link("a", "b", "r1", id.RelationshipSpouse)

	ok, err := s.store.Exists(s.ctx, "a", "r1")
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.store.Update(s.ctx, models.Relationship{
		ID: "r1", PersonID: "a", RelatedPersonID: "b", Type: id.RelationshipCousin,
	}))

	removed, err := s.store.Delete(s.ctx, "a", "r1")
	s.Require().NoError(err)
	s.Equal(id.RelationshipCousin, removed.Type)

	_, err = s.store.Delete(s.ctx, "a", "r1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryRelationshipStoreSuite) TestDeleteAllRelatedTo() {
	s.link("a", "b", "r1", id.RelationshipSpouse)
	s.link("c", "b", "r2", id.RelationshipChild)
	s.link("c", "a", "r3", id.RelationshipAunt)
	s.link("b", "a", "r4", id.RelationshipSpouse)

	n, err := s.store.DeleteAllRelatedTo(s.ctx, "b")
	s.Require().NoError(err)
	s.Equal(2, n)

	fromA, err := s.store.ListByPerson(s.ctx, "a")
	s.Require().NoError(err)
	s.Empty(fromA)

	fromC, err := s.store.ListByPerson(s.ctx, "c")
	s.Require().NoError(err)
	s.Require().Len(fromC, 1)
	s.Equal(id.PersonID("a"), fromC[0].RelatedPersonID)

	// relationships owned by b survive until its own bucket is dropped
	n, err = s.store.DeleteAllForPerson(s.ctx, "b")
	s.Require().NoError(err)
	s.Equal(1, n)
}
