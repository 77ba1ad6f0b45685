package audit

import (
	"time"

	id "people/pkg/domain"
)

// Event captures one lifecycle change. PersonID is the person whose records
// changed; Subject names the record itself.
type Event struct {
	Timestamp time.Time
	PersonID  id.PersonID
	Subject   string
	Action    string
	Reason    string
	RequestID string
}

type Action string

const (
	EventPersonCreated       Action = "person_created"
	EventPersonUpdated       Action = "person_updated"
	EventPersonDeleted       Action = "person_deleted"
	EventAddressCreated      Action = "address_created"
	EventAddressUpdated      Action = "address_updated"
	EventAddressDeleted      Action = "address_deleted"
	EventEmploymentCreated   Action = "employment_created"
	EventEmploymentUpdated   Action = "employment_updated"
	EventEmploymentDeleted   Action = "employment_deleted"
	EventRelationshipCreated Action = "relationship_created"
	EventRelationshipUpdated Action = "relationship_updated"
	EventRelationshipDeleted Action = "relationship_deleted"
)
