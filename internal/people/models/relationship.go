package models

import (
	id "people/pkg/domain"
)

// Relationship links its owner (PersonID) to another existing person.
// A person can never be related to themselves.
type Relationship struct {
	ID              id.RelationshipID
	PersonID        id.PersonID
	RelatedPersonID id.PersonID
	Type            id.RelationshipType
}
