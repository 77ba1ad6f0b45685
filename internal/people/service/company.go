package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"people/internal/people/models"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

type companyKey struct {
	name    string
	address string
}

type companyGroup struct {
	summary   models.CompanySummary
	employees map[id.PersonID]struct{}
}

// ListCompanies rolls employments up into one summary per company, where a
// company is a (name, address) pair compared case-insensitively. Display
// casing comes from the first employment seen for the group; EmployeeCount
// counts distinct people.
func (s *Service) ListCompanies(ctx context.Context) (_ []*models.CompanySummary, err error) {
	ctx, span := s.startSpan(ctx, "people.ListCompanies")
	defer func() { endSpan(span, err) }()
	if s.metrics != nil {
		defer s.metrics.ObserveCompanyRollup(time.Now())
	}

	all, err := s.employments.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employments")
	}

	groups := make(map[companyKey]*companyGroup)
	for _, e := range all {
		key := companyKey{name: strings.ToLower(e.Name), address: strings.ToLower(e.Address)}
		g, ok := groups[key]
		if !ok {
			g = &companyGroup{
				summary:   models.CompanySummary{Name: e.Name, Address: e.Address},
				employees: make(map[id.PersonID]struct{}),
			}
			groups[key] = g
		}
		g.employees[e.PersonID] = struct{}{}
	}

	out := make([]*models.CompanySummary, 0, len(groups))
	for _, g := range groups {
		summary := g.summary
		summary.EmployeeCount = len(g.employees)
		out = append(out, &summary)
	}
	sort.Slice(out, func(i, j int) bool {
		return companySortKey(out[i]) < companySortKey(out[j])
	})

	span.SetAttributes(attribute.Int("employments.scanned", len(all)), attribute.Int("companies", len(out)))
	return out, nil
}

// companySortKey orders companies by lower-cased name, then lower-cased address.
func companySortKey(c *models.CompanySummary) string {
	return strings.ToLower(c.Name) + "|" + strings.ToLower(c.Address)
}
