package render

import (
	"io"
	"slices"
	"strconv"

	"people/internal/people/models"
	id "people/pkg/domain"
)

// Employments prints current jobs first, then by start date, newest first.
func Employments(w io.Writer, employments []*models.Employment) error {
	if len(employments) == 0 {
		return empty(w, "No employment records found.")
	}
	sorted := slices.Clone(employments)
	slices.SortStableFunc(sorted, func(a, b *models.Employment) int {
		if a.CurrentEmployer != b.CurrentEmployer {
			if a.CurrentEmployer {
				return -1
			}
			return 1
		}
		return b.StartDate.Compare(a.StartDate)
	})

	t := newTable(w, "ID", "Current", "Start", "End", "PayType", "Company")
	for _, e := range sorted {
		end := "-"
		if e.EndDate != nil {
			end = id.FormatDate(*e.EndDate)
		}
		t.row(
			e.ID.String(),
			yesNo(e.CurrentEmployer),
			id.FormatDate(e.StartDate),
			end,
			e.PayType.String(),
			Truncate(e.Name, 18),
		)
	}
	return t.flush()
}

func Employment(w io.Writer, e *models.Employment) error {
	end := ""
	if e.EndDate != nil {
		end = id.FormatDate(*e.EndDate)
	}
	f := &fields{w: w}
	f.line("ID", e.ID)
	f.line("Person ID", e.PersonID)
	f.line("Company", e.Name)
	f.line("Description", e.Description)
	f.line("Address", e.Address)
	f.line("Job Title", e.JobTitle)
	f.line("Pay Type", e.PayType)
	f.line("Rate", id.FormatMoney(e.RateOfPay))
	f.line("Current", e.CurrentEmployer)
	f.line("Start Date", id.FormatDate(e.StartDate))
	f.line("End Date", end)
	return f.err
}

// Companies prints the rollup in the order the service produced it.
func Companies(w io.Writer, companies []*models.CompanySummary) error {
	if len(companies) == 0 {
		return empty(w, "No companies found.")
	}
	t := newTable(w, "Company", "Address", "Employees")
	for _, c := range companies {
		t.row(Truncate(c.Name, 24), Truncate(c.Address, 24), strconv.Itoa(c.EmployeeCount))
	}
	return t.flush()
}
