package models

import (
	"github.com/shopspring/decimal"

	id "people/pkg/domain"
)

// Address belongs to exactly one person; its id is unique within that person.
type Address struct {
	ID             id.AddressID
	PersonID       id.PersonID
	Street         string
	Town           string
	State          string
	Type           id.AddressType
	Description    string
	Owns           bool
	Primary        bool
	MonthlyPayment decimal.Decimal
	Bedrooms       int
	Bathrooms      int
}

// AddressFilter narrows a search across every person's addresses.
// Street and StreetContains are mutually exclusive; blank fields are ignored.
type AddressFilter struct {
	Street         string
	Town           string
	State          string
	StreetContains string
}
