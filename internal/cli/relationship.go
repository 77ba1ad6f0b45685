package cli

import (
	"github.com/spf13/cobra"

	"people/internal/cli/render"
	"people/internal/people/models"
	id "people/pkg/domain"
)

var relationshipFlags = []flagSpec{
	{"person-id", "owning person id <text:1-50>"},
	{"related-person-id", "<text:1-50>"},
	{"type", "<spouse|child|aunt|uncle|niece|nephew|grandparent|grandchild|cousin>"},
}

func (a *App) relationshipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relationship",
		Short: "Manage relationships between people",
		Long:  "Manage relationships. IDs are auto-generated on create; use list or get to see them.",
	}
	cmd.AddCommand(
		a.relationshipCreateCommand(),
		a.relationshipUpdateCommand(),
		a.relationshipDeleteCommand(),
		a.relationshipGetCommand(),
		a.relationshipListCommand(),
	)
	return cmd
}

func (a *App) relationshipCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Relate a person to another person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectID(cmd); err != nil {
				return err
			}
			rel, err := relationshipFromFlags(cmd)
			if err != nil {
				return err
			}
			created, err := a.svc.CreateRelationship(cmd.Context(), rel)
			if err != nil {
				return err
			}
			return render.Relationship(cmd.OutOrStdout(), created)
		},
	}
	addFlags(cmd, relationshipFlags...)
	addIDGuard(cmd)
	return cmd
}

func (a *App) relationshipUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace one of a person's relationships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			relationshipID, err := requireString(cmd, "id")
			if err != nil {
				return err
			}
			rel, err := relationshipFromFlags(cmd)
			if err != nil {
				return err
			}
			rel.ID = id.RelationshipID(relationshipID)
			updated, err := a.svc.UpdateRelationship(cmd.Context(), rel)
			if err != nil {
				return err
			}
			return render.Relationship(cmd.OutOrStdout(), updated)
		},
	}
	addFlags(cmd, append([]flagSpec{{"id", "relationship id <text:1-50>"}}, relationshipFlags...)...)
	return cmd
}

func (a *App) relationshipDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove one of a person's relationships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, relationshipID, err := scopedIDs(cmd)
			if err != nil {
				return err
			}
			deleted, err := a.svc.DeleteRelationship(cmd.Context(), personID, id.RelationshipID(relationshipID))
			if err != nil {
				return err
			}
			return render.Relationship(cmd.OutOrStdout(), deleted)
		},
	}
	addScopedIDFlags(cmd, "relationship")
	return cmd
}

func (a *App) relationshipGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one of a person's relationships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, relationshipID, err := scopedIDs(cmd)
			if err != nil {
				return err
			}
			rel, err := a.svc.GetRelationship(cmd.Context(), personID, id.RelationshipID(relationshipID))
			if err != nil {
				return err
			}
			return render.Relationship(cmd.OutOrStdout(), rel)
		},
	}
	addScopedIDFlags(cmd, "relationship")
	return cmd
}

func (a *App) relationshipListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a person's relationships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, err := personIDFlag(cmd)
			if err != nil {
				return err
			}
			rels, err := a.svc.ListRelationships(cmd.Context(), personID)
			if err != nil {
				return err
			}
			return render.Relationships(cmd.OutOrStdout(), rels)
		},
	}
	addFlags(cmd, flagSpec{"person-id", "owning person id <text:1-50>"})
	return cmd
}

func relationshipFromFlags(cmd *cobra.Command) (models.Relationship, error) {
	r := &flagReader{cmd: cmd}
	rel := models.Relationship{
		PersonID:        id.PersonID(r.str("person-id")),
		RelatedPersonID: id.PersonID(r.str("related-person-id")),
		Type:            readEnum(r, "type", id.ParseRelationshipType),
	}
	if r.err != nil {
		return models.Relationship{}, r.err
	}
	return rel, nil
}
