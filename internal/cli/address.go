package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"people/internal/cli/render"
	"people/internal/people/models"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

var addressFlags = []flagSpec{
	{"person-id", "owning person id <text:1-50>"},
	{"street", "street address <text:1-500>"},
	{"town", "<text:1-100>"},
	{"state", "<text:1-50>"},
	{"type", "<house|apartment|condo|flat|other>"},
	{"description", "[text:1-500]"},
	{"owns", "<true|false>"},
	{"primary", "<true|false>"},
	{"monthly-payment", "<number:0-1000000.00>"},
	{"bedrooms", "<number:0-100>"},
	{"bathrooms", "<number:0-100>"},
}

func (a *App) addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage addresses",
		Long:  "Manage addresses. IDs are auto-generated on create; use list or get to see them.",
	}
	cmd.AddCommand(
		a.addressCreateCommand(),
		a.addressUpdateCommand(),
		a.addressDeleteCommand(),
		a.addressGetCommand(),
		a.addressListCommand(),
	)
	return cmd
}

func (a *App) addressCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an address to a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectID(cmd); err != nil {
				return err
			}
			addr, err := addressFromFlags(cmd)
			if err != nil {
				return err
			}
			created, err := a.svc.CreateAddress(cmd.Context(), addr)
			if err != nil {
				return err
			}
			return render.Address(cmd.OutOrStdout(), created)
		},
	}
	addFlags(cmd, addressFlags...)
	addIDGuard(cmd)
	return cmd
}

func (a *App) addressUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace one of a person's addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addressID, err := requireString(cmd, "id")
			if err != nil {
				return err
			}
			addr, err := addressFromFlags(cmd)
			if err != nil {
				return err
			}
			addr.ID = id.AddressID(addressID)
			updated, err := a.svc.UpdateAddress(cmd.Context(), addr)
			if err != nil {
				return err
			}
			return render.Address(cmd.OutOrStdout(), updated)
		},
	}
	addFlags(cmd, append([]flagSpec{{"id", "address id <text:1-50>"}}, addressFlags...)...)
	return cmd
}

func (a *App) addressDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove one of a person's addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, addressID, err := scopedIDs(cmd)
			if err != nil {
				return err
			}
			deleted, err := a.svc.DeleteAddress(cmd.Context(), personID, id.AddressID(addressID))
			if err != nil {
				return err
			}
			return render.Address(cmd.OutOrStdout(), deleted)
		},
	}
	addScopedIDFlags(cmd, "address")
	return cmd
}

func (a *App) addressGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one of a person's addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, addressID, err := scopedIDs(cmd)
			if err != nil {
				return err
			}
			addr, err := a.svc.GetAddress(cmd.Context(), personID, id.AddressID(addressID))
			if err != nil {
				return err
			}
			return render.Address(cmd.OutOrStdout(), addr)
		},
	}
	addScopedIDFlags(cmd, "address")
	return cmd
}

// address list shows one person's addresses with --person-id, and searches
// every address otherwise.
func (a *App) addressListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a person's addresses, or search all addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if personID := optionalString(cmd, "person-id"); strings.TrimSpace(personID) != "" {
				addrs, err := a.svc.ListAddresses(ctx, id.PersonID(personID))
				if err != nil {
					return err
				}
				return render.Addresses(cmd.OutOrStdout(), addrs)
			}

			filter := models.AddressFilter{
				Street:         optionalString(cmd, "street"),
				StreetContains: optionalString(cmd, "street-contains"),
				Town:           optionalString(cmd, "town"),
				State:          optionalString(cmd, "state"),
			}
			if filter.Street != "" && filter.StreetContains != "" {
				return dErrors.New(dErrors.CodeBadRequest, "use either --street or --street-contains, not both")
			}
			addrs, err := a.svc.ListAddressesFiltered(ctx, filter)
			if err != nil {
				return err
			}
			return render.SearchResults(cmd.OutOrStdout(), addrs)
		},
	}
	addFlags(cmd,
		flagSpec{"person-id", "list this person's addresses"},
		flagSpec{"street", "exact street, case-insensitive"},
		flagSpec{"street-contains", "street substring, case-insensitive"},
		flagSpec{"town", "exact town, case-insensitive"},
		flagSpec{"state", "exact state, case-insensitive"},
	)
	return cmd
}

func addressFromFlags(cmd *cobra.Command) (models.Address, error) {
	r := &flagReader{cmd: cmd}
	addr := models.Address{
		PersonID:       id.PersonID(r.str("person-id")),
		Street:         r.str("street"),
		Town:           r.str("town"),
		State:          r.str("state"),
		Type:           readEnum(r, "type", id.ParseAddressType),
		Description:    r.opt("description"),
		Owns:           r.boolean("owns"),
		Primary:        r.boolean("primary"),
		MonthlyPayment: r.money("monthly-payment"),
		Bedrooms:       r.integer("bedrooms"),
		Bathrooms:      r.integer("bathrooms"),
	}
	if r.err != nil {
		return models.Address{}, r.err
	}
	return addr, nil
}

// addScopedIDFlags registers --person-id and --id for a record owned by a person.
func addScopedIDFlags(cmd *cobra.Command, entity string) {
	addFlags(cmd,
		flagSpec{"person-id", "owning person id <text:1-50>"},
		flagSpec{"id", entity + " id <text:1-50>"},
	)
}

func scopedIDs(cmd *cobra.Command) (id.PersonID, string, error) {
	personID, err := personIDFlag(cmd)
	if err != nil {
		return "", "", err
	}
	recordID, err := requireString(cmd, "id")
	if err != nil {
		return "", "", err
	}
	return personID, recordID, nil
}
