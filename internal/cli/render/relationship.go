package render

import (
	"cmp"
	"io"
	"slices"

	"people/internal/people/models"
)

// Relationships prints relationships in relationship-type order.
func Relationships(w io.Writer, relationships []*models.Relationship) error {
	if len(relationships) == 0 {
		return empty(w, "No relationships found.")
	}
	sorted := slices.Clone(relationships)
	slices.SortStableFunc(sorted, func(a, b *models.Relationship) int {
		return cmp.Compare(a.Type.Ordinal(), b.Type.Ordinal())
	})

	t := newTable(w, "ID", "Type", "Related Person ID")
	for _, r := range sorted {
		t.row(r.ID.String(), r.Type.String(), r.RelatedPersonID.String())
	}
	return t.flush()
}

func Relationship(w io.Writer, r *models.Relationship) error {
	f := &fields{w: w}
	f.line("ID", r.ID)
	f.line("Person ID", r.PersonID)
	f.line("Related Person ID", r.RelatedPersonID)
	f.line("Type", r.Type)
	return f.err
}
