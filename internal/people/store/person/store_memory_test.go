package person

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"people/internal/people/models"
	id "people/pkg/domain"
	"people/pkg/platform/sentinel"
)

type InMemoryPersonStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemoryPersonStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func TestInMemoryPersonStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryPersonStoreSuite))
}

func newPerson(first, last string) models.Person {
	return models.Person{
		ID:              id.PersonID(id.NewID()),
		FirstName:       first,
		LastName:        last,
		DateOfBirth:     id.Date(1990, time.March, 3),
		Gender:          id.GenderFemale,
		PreferredGender: models.PreferredGenderOf(id.PreferredGenderFemale),
	}
}

func (s *InMemoryPersonStoreSuite) TestLifecycle() {
	p := newPerson("Ada", "Lovelace")

	s.Run("create then find", func() {
		s.Require().NoError(s.store.Create(s.ctx, p))

		found, err := s.store.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal(p, found)

		ok, err := s.store.Exists(s.ctx, p.ID)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("create over existing id conflicts", func() {
		s.ErrorIs(s.store.Create(s.ctx, p), sentinel.ErrConflict)
	})

	s.Run("update replaces the record", func() {
		updated := p
		updated.MiddleName = "King"
		s.Require().NoError(s.store.Update(s.ctx, updated))

		found, err := s.store.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal("King", found.MiddleName)
	})

	s.Run("delete returns the removed record", func() {
		removed, err := s.store.Delete(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal("King", removed.MiddleName)

		ok, err := s.store.Exists(s.ctx, p.ID)
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *InMemoryPersonStoreSuite) TestMissingRecords() {
	missing := id.PersonID("missing")

	_, err := s.store.FindByID(s.ctx, missing)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.Delete(s.ctx, missing)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.Update(s.ctx, models.Person{ID: missing}), sentinel.ErrNotFound)
}

func (s *InMemoryPersonStoreSuite) TestListKeepsInsertionOrder() {
	a, b, c := newPerson("A", "One"), newPerson("B", "Two"), newPerson("C", "Three")
	for _, p := range []models.Person{a, b, c} {
		s.Require().NoError(s.store.Create(s.ctx, p))
	}
	_, err := s.store.Delete(s.ctx, b.ID)
	s.Require().NoError(err)

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(a.ID, list[0].ID)
	s.Equal(c.ID, list[1].ID)
}

func (s *InMemoryPersonStoreSuite) TestConcurrentCreates() {
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.store.Create(s.ctx, newPerson(fmt.Sprintf("P%d", i), "Concurrent"))
		}()
	}
	wg.Wait()

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 50)
}
