package render

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"people/internal/people/models"
	id "people/pkg/domain"
)

func compareStreet(a, b *models.Address) int {
	return strings.Compare(strings.ToLower(a.Street), strings.ToLower(b.Street))
}

// Addresses prints one person's addresses, primary first then by street.
func Addresses(w io.Writer, addresses []*models.Address) error {
	if len(addresses) == 0 {
		return empty(w, "No addresses found.")
	}
	sorted := slices.Clone(addresses)
	slices.SortStableFunc(sorted, func(a, b *models.Address) int {
		if a.Primary != b.Primary {
			if a.Primary {
				return -1
			}
			return 1
		}
		return compareStreet(a, b)
	})

	t := newTable(w, "ID", "Primary", "Owns", "Type", "Beds", "Baths", "Street")
	for _, a := range sorted {
		t.row(
			a.ID.String(),
			yesNo(a.Primary),
			yesNo(a.Owns),
			a.Type.String(),
			strconv.Itoa(a.Bedrooms),
			strconv.Itoa(a.Bathrooms),
			Truncate(a.Street, 24),
		)
	}
	return t.flush()
}

// SearchResults prints addresses matched across every person, by street.
func SearchResults(w io.Writer, addresses []*models.Address) error {
	if len(addresses) == 0 {
		return empty(w, "No addresses found.")
	}
	sorted := slices.Clone(addresses)
	slices.SortStableFunc(sorted, compareStreet)

	t := newTable(w, "ID", "Type", "Beds", "Baths", "Street", "Town", "State")
	for _, a := range sorted {
		t.row(
			a.ID.String(),
			a.Type.String(),
			strconv.Itoa(a.Bedrooms),
			strconv.Itoa(a.Bathrooms),
			Truncate(a.Street, 20),
			Truncate(a.Town, 14),
			Truncate(a.State, 8),
		)
	}
	return t.flush()
}

func Address(w io.Writer, a *models.Address) error {
	f := &fields{w: w}
	f.line("ID", a.ID)
	f.line("Person ID", a.PersonID)
	f.line("Street", a.Street)
	f.line("Town", a.Town)
	f.line("State", a.State)
	f.line("Type", a.Type)
	f.line("Description", a.Description)
	f.line("Owns", a.Owns)
	f.line("Primary", a.Primary)
	f.line("Monthly Payment", id.FormatMoney(a.MonthlyPayment))
	f.line("Bedrooms", a.Bedrooms)
	f.line("Bathrooms", a.Bathrooms)
	return f.err
}
