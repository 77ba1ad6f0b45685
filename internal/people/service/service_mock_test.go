package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"people/internal/people/models"
	"people/internal/people/service/mocks"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
	"people/pkg/platform/sentinel"
	"people/pkg/requestcontext"
)

type mockStores struct {
	people        *mocks.MockPersonStore
	addresses     *mocks.MockAddressStore
	employments   *mocks.MockEmploymentStore
	relationships *mocks.MockRelationshipStore
	audit         *mocks.MockAuditPublisher
}

func newMockedService(t *testing.T) (*Service, mockStores) {
	ctrl := gomock.NewController(t)
	m := mockStores{
		people:        mocks.NewMockPersonStore(ctrl),
		addresses:     mocks.NewMockAddressStore(ctrl),
		employments:   mocks.NewMockEmploymentStore(ctrl),
		relationships: mocks.NewMockRelationshipStore(ctrl),
		audit:         mocks.NewMockAuditPublisher(ctrl),
	}
	svc := New(m.people, m.addresses, m.employments, m.relationships,
		WithAuditPublisher(m.audit),
		withIDGenerator(func() string { return "generated" }))
	return svc, m
}

var errStoreDown = errors.New("store unavailable")

func testCtx() context.Context {
	return requestcontext.WithTime(context.Background(), time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
}

func TestDeletePerson_StopsCascadeOnFailure(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := testCtx()
	personID := id.PersonID("p1")

	gomock.InOrder(
		m.people.EXPECT().Exists(gomock.Any(), personID).Return(true, nil),
		m.addresses.EXPECT().DeleteAllForPerson(gomock.Any(), personID).Return(2, nil),
		m.employments.EXPECT().DeleteAllForPerson(gomock.Any(), personID).Return(0, errStoreDown),
	)
	// relationships and the person itself must not be touched after the failure

	_, err := svc.DeletePerson(ctx, personID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.ErrorIs(t, err, errStoreDown)
}

func TestDeletePerson_RunsStepsInOrder(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := testCtx()
	personID := id.PersonID("p1")

	gomock.InOrder(
		m.people.EXPECT().Exists(gomock.Any(), personID).Return(true, nil),
		m.addresses.EXPECT().DeleteAllForPerson(gomock.Any(), personID).Return(1, nil),
		m.employments.EXPECT().DeleteAllForPerson(gomock.Any(), personID).Return(1, nil),
		m.relationships.EXPECT().DeleteAllForPerson(gomock.Any(), personID).Return(1, nil),
		m.relationships.EXPECT().DeleteAllRelatedTo(gomock.Any(), personID).Return(1, nil),
		m.people.EXPECT().Delete(gomock.Any(), personID).Return(models.Person{ID: personID}, nil),
	)
	m.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	removed, err := svc.DeletePerson(ctx, personID)
	require.NoError(t, err)
	assert.Equal(t, personID, removed.ID)
}

func TestStoreFailuresSurfaceAsInternal(t *testing.T) {
	t.Run("person lookup", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.people.EXPECT().Exists(gomock.Any(), id.PersonID("p1")).Return(false, errStoreDown)

		_, err := svc.ListAddresses(testCtx(), "p1")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("list people", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.people.EXPECT().List(gomock.Any()).Return(nil, errStoreDown)

		_, err := svc.ListPeople(testCtx())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("company roll-up", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.employments.EXPECT().ListAll(gomock.Any()).Return(nil, errStoreDown)

		_, err := svc.ListCompanies(testCtx())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("create write", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.people.EXPECT().Exists(gomock.Any(), id.PersonID("generated")).Return(false, nil)
		m.people.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errStoreDown)

		_, err := svc.CreatePerson(testCtx(), models.Person{
			FirstName:       "Ada",
			LastName:        "Lovelace",
			DateOfBirth:     id.Date(1815, time.December, 10),
			Gender:          id.GenderFemale,
			PreferredGender: models.PreferredGenderOf(id.PreferredGenderFemale),
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func TestStoreSentinelsAreTranslated(t *testing.T) {
	svc, m := newMockedService(t)
	m.people.EXPECT().Exists(gomock.Any(), id.PersonID("p1")).Return(true, nil)
	m.employments.EXPECT().FindByID(gomock.Any(), id.PersonID("p1"), id.EmploymentID("e1")).
		Return(models.Employment{}, sentinel.ErrNotFound)

	_, err := svc.GetEmployment(testCtx(), "p1", "e1")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.Equal(t, "employment not found", err.Error())
}

func TestCreateDefensiveCollisionCheck(t *testing.T) {
	svc, m := newMockedService(t)
	m.people.EXPECT().Exists(gomock.Any(), id.PersonID("p1")).Return(true, nil)
	m.people.EXPECT().Exists(gomock.Any(), id.PersonID("p2")).Return(true, nil)
	m.relationships.EXPECT().Exists(gomock.Any(), id.PersonID("p1"), id.RelationshipID("generated")).Return(true, nil)

	_, err := svc.CreateRelationship(testCtx(), models.Relationship{
		PersonID: "p1", RelatedPersonID: "p2", Type: id.RelationshipSpouse,
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	assert.Equal(t, "relationship id already exists for person", err.Error())
}

func TestAuditFailureDoesNotFailTheOperation(t *testing.T) {
	svc, m := newMockedService(t)
	m.people.EXPECT().Exists(gomock.Any(), id.PersonID("p1")).Return(true, nil)
	m.addresses.EXPECT().Delete(gomock.Any(), id.PersonID("p1"), id.AddressID("a1")).
		Return(models.Address{ID: "a1", PersonID: "p1"}, nil)
	m.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errStoreDown)

	removed, err := svc.DeleteAddress(testCtx(), "p1", "a1")
	require.NoError(t, err)
	assert.Equal(t, id.AddressID("a1"), removed.ID)
}
