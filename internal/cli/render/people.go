package render

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"people/internal/people/models"
	id "people/pkg/domain"
)

// People prints a person table sorted by last then first name.
func People(w io.Writer, people []*models.Person) error {
	if len(people) == 0 {
		return empty(w, "No people found.")
	}
	sorted := slices.Clone(people)
	slices.SortStableFunc(sorted, func(a, b *models.Person) int {
		return cmp.Or(cmp.Compare(a.LastName, b.LastName), cmp.Compare(a.FirstName, b.FirstName))
	})

	t := newTable(w, "ID", "Name", "DOB", "Gender", "Preferred", "Picture")
	for _, p := range sorted {
		t.row(
			p.ID.String(),
			Truncate(p.DisplayName(), 22),
			id.FormatDate(p.DateOfBirth),
			p.Gender.String(),
			p.PreferredGender.String(),
			yesNo(p.PicturePath != ""),
		)
	}
	return t.flush()
}

// PersonDetail is everything shown by "person get".
type PersonDetail struct {
	Person        *models.Person
	Addresses     []*models.Address
	Relationships []*models.Relationship
	Employments   []*models.Employment
}

// PersonFields prints the person's own fields.
func PersonFields(w io.Writer, p *models.Person) error {
	f := &fields{w: w}
	f.line("ID", p.ID)
	f.line("First", p.FirstName)
	f.line("Middle", p.MiddleName)
	f.line("Last", p.LastName)
	f.line("DOB", id.FormatDate(p.DateOfBirth))
	f.line("Gender", p.Gender)
	f.line("Preferred Gender", p.PreferredGender)
	f.line("Picture", p.PicturePath)
	return f.err
}

// Person prints a field dump followed by the person's owned records.
func Person(w io.Writer, d PersonDetail) error {
	if err := PersonFields(w, d.Person); err != nil {
		return err
	}

	sections := []struct {
		title string
		write func() error
	}{
		{"Addresses", func() error { return Addresses(w, d.Addresses) }},
		{"Relationships", func() error { return Relationships(w, d.Relationships) }},
		{"Employment", func() error { return Employments(w, d.Employments) }},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "\n%s:\n", s.title); err != nil {
			return err
		}
		if err := s.write(); err != nil {
			return err
		}
	}
	return nil
}
