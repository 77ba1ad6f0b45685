// Package validation holds the field-level rules for every entity. Validators
// are pure: they never consult storage, they check fields in declaration order,
// and they stop at the first violation.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"people/internal/people/models"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

var validate = validator.New()

// ValidatePerson checks a fully assembled person. now anchors the
// "not in the future" rule for the date of birth.
func ValidatePerson(p models.Person, now time.Time) error {
	if err := requireID(string(p.ID), "person id"); err != nil {
		return err
	}
	if err := requireText(p.FirstName, "first name", NameMax); err != nil {
		return err
	}
	if err := optionalText(p.MiddleName, "middle name", NameMax); err != nil {
		return err
	}
	if err := requireText(p.LastName, "last name", NameMax); err != nil {
		return err
	}
	if err := requireDate(p.DateOfBirth, "date of birth", now); err != nil {
		return err
	}
	if !p.Gender.IsValid() {
		return violation("gender must be provided")
	}
	if err := validatePreferredGender(p.PreferredGender); err != nil {
		return err
	}
	return optionalText(p.PicturePath, "picture", AddressMax)
}

func ValidateAddress(a models.Address) error {
	if err := requireID(string(a.ID), "address id"); err != nil {
		return err
	}
	if err := requireID(string(a.PersonID), "person id"); err != nil {
		return err
	}
	if err := requireText(a.Street, "street", AddressMax); err != nil {
		return err
	}
	if err := requireText(a.Town, "town", TownMax); err != nil {
		return err
	}
	if err := requireText(a.State, "state", StateMax); err != nil {
		return err
	}
	if !a.Type.IsValid() {
		return violation("address type must be provided")
	}
	if err := optionalText(a.Description, "description", DescriptionMax); err != nil {
		return err
	}
	if err := requireMoney(a.MonthlyPayment, "monthly payment", MonthlyPaymentMax); err != nil {
		return err
	}
	if err := requireRange(a.Bedrooms, "bedrooms", MinRooms, MaxRooms); err != nil {
		return err
	}
	return requireRange(a.Bathrooms, "bathrooms", MinRooms, MaxRooms)
}

// ValidateEmployment checks a fully assembled employment. A current employer
// with an end date is a disallowed combination and reported as a bad request.
func ValidateEmployment(e models.Employment, now time.Time) error {
	if err := requireID(string(e.ID), "employment id"); err != nil {
		return err
	}
	if err := requireID(string(e.PersonID), "person id"); err != nil {
		return err
	}
	if err := requireText(e.Name, "company name", CompanyNameMax); err != nil {
		return err
	}
	if err := optionalText(e.Description, "company description", DescriptionMax); err != nil {
		return err
	}
	if err := requireText(e.Address, "employment address", AddressMax); err != nil {
		return err
	}
	if err := requireText(e.JobTitle, "job title", JobTitleMax); err != nil {
		return err
	}
	if !e.PayType.IsValid() {
		return violation("pay type must be provided")
	}
	if err := requireMoney(e.RateOfPay, "rate of pay", RateOfPayMax); err != nil {
		return err
	}
	if err := requireDate(e.StartDate, "start date", now); err != nil {
		return err
	}
	if e.EndDate != nil && id.CalendarDate(*e.EndDate).Before(id.CalendarDate(e.StartDate)) {
		return violation("end date must be on or after start date")
	}
	if e.CurrentEmployer && e.EndDate != nil {
		return dErrors.New(dErrors.CodeBadRequest, "current employer must not have an end date")
	}
	return nil
}

func ValidateRelationship(r models.Relationship) error {
	if err := requireID(string(r.ID), "relationship id"); err != nil {
		return err
	}
	if err := requireID(string(r.PersonID), "person id"); err != nil {
		return err
	}
	if err := requireID(string(r.RelatedPersonID), "related person id"); err != nil {
		return err
	}
	if !r.Type.IsValid() {
		return violation("relationship type must be provided")
	}
	if r.PersonID == r.RelatedPersonID {
		return dErrors.New(dErrors.CodeBadRequest, "related person id must be different from person id")
	}
	return nil
}

func validatePreferredGender(g models.PreferredGender) error {
	if !g.Type().IsValid() {
		return violation("preferred gender must be provided")
	}
	if !g.IsOther() {
		if g.Label() != "" {
			return dErrors.New(dErrors.CodeBadRequest, "preferred gender other label is only allowed with preferred gender other")
		}
		return nil
	}
	if strings.TrimSpace(g.Label()) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "preferred gender other label must be provided")
	}
	return maxLength(g.Label(), "preferred gender other label", PreferredGenderOtherMax)
}

func requireID(value, label string) error {
	return requireText(value, label, id.IDMaxLength)
}

func requireText(value, label string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return violation(label + " must be provided")
	}
	return maxLength(value, label, maxLen)
}

// optionalText treats "" as absent; a present value must still be non-blank.
func optionalText(value, label string, maxLen int) error {
	if value == "" {
		return nil
	}
	if strings.TrimSpace(value) == "" {
		return violation(label + " must not be blank")
	}
	return maxLength(value, label, maxLen)
}

func maxLength(value, label string, maxLen int) error {
	if err := validate.Var(value, fmt.Sprintf("max=%d", maxLen)); err != nil {
		return violation(fmt.Sprintf("%s must be at most %d characters", label, maxLen))
	}
	return nil
}

func requireDate(date time.Time, label string, now time.Time) error {
	if date.IsZero() {
		return violation(label + " must be provided")
	}
	if id.CalendarDate(date).After(id.Today(now)) {
		return violation(label + " must not be in the future")
	}
	return nil
}

func requireRange(value int, label string, lo, hi int) error {
	if err := validate.Var(value, fmt.Sprintf("gte=%d,lte=%d", lo, hi)); err != nil {
		return violation(fmt.Sprintf("%s must be between %d and %d", label, lo, hi))
	}
	return nil
}

func requireMoney(value decimal.Decimal, label string, ceiling int64) error {
	if id.FractionalDigits(value) > id.MoneyScale {
		return violation(fmt.Sprintf("%s must have at most %d decimal places", label, id.MoneyScale))
	}
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(ceiling)) {
		return violation(fmt.Sprintf("%s must be between 0 and %d", label, ceiling))
	}
	return nil
}

func violation(reason string) error {
	return dErrors.New(dErrors.CodeValidation, reason)
}
