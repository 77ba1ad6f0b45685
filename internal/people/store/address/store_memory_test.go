package address

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"people/internal/people/models"
	id "people/pkg/domain"
	"people/pkg/platform/sentinel"
)

type InMemoryAddressStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemoryAddressStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func TestInMemoryAddressStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryAddressStoreSuite))
}

func newAddress(owner id.PersonID, addressID id.AddressID, street string) models.Address {
	return models.Address{
		ID:             addressID,
		PersonID:       owner,
		Street:         street,
		Town:           "Springfield",
		State:          "CA",
		Type:           id.AddressTypeHouse,
		MonthlyPayment: decimal.NewFromInt(1200),
		Bedrooms:       2,
		Bathrooms:      1,
	}
}

func (s *InMemoryAddressStoreSuite) TestScopedIdentity() {
	s.Require().NoError(s.store.Create(s.ctx, newAddress("p1", "a1", "1 Main St")))

	s.Run("same id under another person is allowed", func() {
		s.Require().NoError(s.store.Create(s.ctx, newAddress("p2", "a1", "2 Main St")))
	})

	s.Run("same id under the same person conflicts", func() {
		s.ErrorIs(s.store.Create(s.ctx, newAddress("p1", "a1", "3 Main St")), sentinel.ErrConflict)
	})

	s.Run("lookup is scoped by owner", func() {
		found, err := s.store.FindByID(s.ctx, "p2", "a1")
		s.Require().NoError(err)
		s.Equal("2 Main St", found.Street)

		_, err = s.store.FindByID(s.ctx, "p3", "a1")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryAddressStoreSuite) TestUpdateAndDelete() {
	a := newAddress("p1", "a1", "1 Main St")
	s.Require().NoError(s.store.Create(s.ctx, a))

	a.Street = "9 Elm St"
	s.Require().NoError(s.store.Update(s.ctx, a))

	removed, err := s.store.Delete(s.ctx, "p1", "a1")
	s.Require().NoError(err)
	s.Equal("9 Elm St", removed.Street)

	ok, err := s.store.Exists(s.ctx, "p1", "a1")
	s.Require().NoError(err)
	s.False(ok)

	s.ErrorIs(s.store.Update(s.ctx, a), sentinel.ErrNotFound)
	_, err = s.store.Delete(s.ctx, "p1", "a1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryAddressStoreSuite) TestBulkOperations() {
	s.Require().NoError(s.store.Create(s.ctx, newAddress("p1", "a1", "1 Main St")))
	s.Require().NoError(s.store.Create(s.ctx, newAddress("p1", "a2", "2 Main St")))
	s.Require().NoError(s.store.Create(s.ctx, newAddress("p2", "a3", "3 Main St")))

	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	n, err := s.store.DeleteAllForPerson(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(2, n)

	list, err := s.store.ListByPerson(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(list)

	list, err = s.store.ListByPerson(s.ctx, "p2")
	s.Require().NoError(err)
	s.Len(list, 1)
}
