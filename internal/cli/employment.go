package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"people/internal/cli/render"
	"people/internal/people/models"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

var employmentFlags = []flagSpec{
	{"person-id", "employee person id <text:1-50>"},
	{"name", "company name <text:1-200>"},
	{"description", "[text:1-500]"},
	{"address", "company address <text:1-500>"},
	{"job-title", "<text:1-100>"},
	{"pay-type", "<salary|hourly>"},
	{"rate", "rate of pay <number:0-1000000000.00>"},
	{"current", "<true|false>"},
	{"start-date", "<MM-DD-YYYY>"},
	{"end-date", "[MM-DD-YYYY], not allowed with --current true"},
}

func (a *App) employmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employment",
		Short: "Manage employment records",
		Long:  "Manage employment records. IDs are auto-generated on create; use list or get to see them.",
	}
	cmd.AddCommand(
		a.employmentCreateCommand(),
		a.employmentUpdateCommand(),
		a.employmentDeleteCommand(),
		a.employmentGetCommand(),
		a.employmentListCommand(),
	)
	return cmd
}

func (a *App) employmentCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an employment record to a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectID(cmd); err != nil {
				return err
			}
			e, err := employmentFromFlags(cmd)
			if err != nil {
				return err
			}
			created, err := a.svc.CreateEmployment(cmd.Context(), e)
			if err != nil {
				return err
			}
			return render.Employment(cmd.OutOrStdout(), created)
		},
	}
	addFlags(cmd, employmentFlags...)
	addIDGuard(cmd)
	return cmd
}

func (a *App) employmentUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace one of a person's employment records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			employmentID, err := requireString(cmd, "id")
			if err != nil {
				return err
			}
			e, err := employmentFromFlags(cmd)
			if err != nil {
				return err
			}
			e.ID = id.EmploymentID(employmentID)
			updated, err := a.svc.UpdateEmployment(cmd.Context(), e)
			if err != nil {
				return err
			}
			return render.Employment(cmd.OutOrStdout(), updated)
		},
	}
	addFlags(cmd, append([]flagSpec{{"id", "employment id <text:1-50>"}}, employmentFlags...)...)
	return cmd
}

func (a *App) employmentDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove one of a person's employment records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, employmentID, err := scopedIDs(cmd)
			if err != nil {
				return err
			}
			deleted, err := a.svc.DeleteEmployment(cmd.Context(), personID, id.EmploymentID(employmentID))
			if err != nil {
				return err
			}
			return render.Employment(cmd.OutOrStdout(), deleted)
		},
	}
	addScopedIDFlags(cmd, "employment")
	return cmd
}

func (a *App) employmentGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one of a person's employment records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, employmentID, err := scopedIDs(cmd)
			if err != nil {
				return err
			}
			e, err := a.svc.GetEmployment(cmd.Context(), personID, id.EmploymentID(employmentID))
			if err != nil {
				return err
			}
			return render.Employment(cmd.OutOrStdout(), e)
		},
	}
	addScopedIDFlags(cmd, "employment")
	return cmd
}

func (a *App) employmentListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a person's employment records, or every record without --person-id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				records []*models.Employment
				err     error
			)
			if personID := optionalString(cmd, "person-id"); strings.TrimSpace(personID) != "" {
				records, err = a.svc.ListEmployments(cmd.Context(), id.PersonID(personID))
			} else {
				records, err = a.svc.ListAllEmployments(cmd.Context())
			}
			if err != nil {
				return err
			}
			return render.Employments(cmd.OutOrStdout(), records)
		},
	}
	addFlags(cmd, flagSpec{"person-id", "list this person's records only"})
	return cmd
}

func employmentFromFlags(cmd *cobra.Command) (models.Employment, error) {
	r := &flagReader{cmd: cmd}
	e := models.Employment{
		PersonID:        id.PersonID(r.str("person-id")),
		Name:            r.str("name"),
		Description:     r.opt("description"),
		Address:         r.str("address"),
		JobTitle:        r.str("job-title"),
		PayType:         readEnum(r, "pay-type", id.ParsePayType),
		RateOfPay:       r.money("rate"),
		CurrentEmployer: r.boolean("current"),
		StartDate:       r.date("start-date"),
		EndDate:         r.optDate("end-date"),
	}
	if r.err != nil {
		return models.Employment{}, r.err
	}
	if e.CurrentEmployer && e.EndDate != nil {
		return models.Employment{}, dErrors.New(dErrors.CodeBadRequest, "current employers must not include --end-date")
	}
	return e, nil
}
