package models

import (
	"time"

	"github.com/shopspring/decimal"

	id "people/pkg/domain"
)

// Employment records one job held by a person.
//
// Invariants:
//   - CurrentEmployer implies EndDate is nil
//   - EndDate, when set, is not before StartDate
//   - StartDate is not in the future
type Employment struct {
	ID              id.EmploymentID
	PersonID        id.PersonID
	Name            string
	Description     string
	Address         string
	JobTitle        string
	PayType         id.PayType
	RateOfPay       decimal.Decimal
	CurrentEmployer bool
	StartDate       time.Time
	EndDate         *time.Time
}

// CompanySummary is derived from employments sharing a company name and
// address (case-insensitive). It is never stored.
type CompanySummary struct {
	Name          string
	Address       string
	EmployeeCount int
}
