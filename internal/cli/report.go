package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"people/internal/audit"
	"people/internal/cli/render"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

func (a *App) companyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Companies derived from employment records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List companies with their distinct employee counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			companies, err := a.svc.ListCompanies(cmd.Context())
			if err != nil {
				return err
			}
			return render.Companies(cmd.OutOrStdout(), companies)
		},
	})
	return cmd
}

func (a *App) auditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit trail",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List audit events, optionally for one person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.audit == nil {
				return dErrors.New(dErrors.CodeBadRequest, "audit trail is not enabled")
			}
			var (
				events []audit.Event
				err    error
			)
			if personID := optionalString(cmd, "person-id"); strings.TrimSpace(personID) != "" {
				events, err = a.audit.List(cmd.Context(), id.PersonID(personID))
			} else {
				events, err = a.audit.ListAll(cmd.Context())
			}
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read audit trail")
			}
			return render.AuditEvents(cmd.OutOrStdout(), events)
		},
	}
	addFlags(list, flagSpec{"person-id", "only events for this person"})
	cmd.AddCommand(list)
	return cmd
}

func (a *App) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show entity counters and timings for this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.gatherer == nil {
				return dErrors.New(dErrors.CodeBadRequest, "metrics are not enabled")
			}
			families, err := a.gatherer.Gather()
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to gather metrics")
			}
			return render.Metrics(cmd.OutOrStdout(), families, "people_")
		},
	}
}
