package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"people/internal/cli/render"
	"people/internal/people/models"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

var personFlags = []flagSpec{
	{"first", "first name <text:1-100>"},
	{"middle", "middle name [text:1-100]"},
	{"last", "last name <text:1-100>"},
	{"dob", "date of birth <MM-DD-YYYY>"},
	{"gender", "<male|female|non-binary>"},
	{"preferred-gender", "<male|female|non-binary|other>"},
	{"preferred-gender-other", "label when --preferred-gender is other <text:1-50>"},
}

var pictureExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

func (a *App) personCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage people",
		Long:  "Manage people. IDs are auto-generated on create; use list or get to see them.",
	}
	cmd.AddCommand(
		a.personCreateCommand(),
		a.personUpdateCommand(),
		a.personPictureCommand(),
		a.personDeleteCommand(),
		a.personGetCommand(),
		a.personListCommand(),
	)
	return cmd
}

func (a *App) personCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectID(cmd); err != nil {
				return err
			}
			if err := rejectPicture(cmd); err != nil {
				return err
			}
			p, err := personFromFlags(cmd)
			if err != nil {
				return err
			}
			created, err := a.svc.CreatePerson(cmd.Context(), p)
			if err != nil {
				return err
			}
			return render.PersonFields(cmd.OutOrStdout(), created)
		},
	}
	addFlags(cmd, personFlags...)
	addIDGuard(cmd)
	addPictureGuard(cmd)
	return cmd
}

// person update replaces every field except the picture, which is kept.
func (a *App) personUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a person's fields, keeping the picture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectPicture(cmd); err != nil {
				return err
			}
			personID, err := requireString(cmd, "id")
			if err != nil {
				return err
			}
			p, err := personFromFlags(cmd)
			if err != nil {
				return err
			}
			p.ID = id.PersonID(personID)

			current, err := a.svc.GetPerson(cmd.Context(), p.ID)
			if err != nil {
				return err
			}
			p.PicturePath = current.PicturePath

			updated, err := a.svc.UpdatePerson(cmd.Context(), p)
			if err != nil {
				return err
			}
			return render.PersonFields(cmd.OutOrStdout(), updated)
		},
	}
	addFlags(cmd, append([]flagSpec{{"id", "person id <text:1-50>"}}, personFlags...)...)
	addPictureGuard(cmd)
	return cmd
}

func (a *App) personPictureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picture",
		Short: "Set a person's picture from a .png or .jpg file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, err := requireString(cmd, "id")
			if err != nil {
				return err
			}
			file, err := requireString(cmd, "file")
			if err != nil {
				return err
			}
			if !pictureExtensions[strings.ToLower(filepath.Ext(file))] {
				return dErrors.New(dErrors.CodeBadRequest, "picture file must be .png or .jpg")
			}
			if _, err := os.Stat(file); err != nil {
				return dErrors.Newf(dErrors.CodeBadRequest, "picture file not found: %s", file)
			}
			updated, err := a.svc.SetPicture(cmd.Context(), id.PersonID(personID), file)
			if err != nil {
				return err
			}
			return render.PersonFields(cmd.OutOrStdout(), updated)
		},
	}
	addFlags(cmd,
		flagSpec{"id", "person id <text:1-50>"},
		flagSpec{"file", "picture path <path:.png|.jpg>"},
	)
	return cmd
}

func (a *App) personDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a person with their addresses, employment and relationships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, err := requireString(cmd, "id")
			if err != nil {
				return err
			}
			deleted, err := a.svc.DeletePerson(cmd.Context(), id.PersonID(personID))
			if err != nil {
				return err
			}
			return render.PersonFields(cmd.OutOrStdout(), deleted)
		},
	}
	addFlags(cmd, flagSpec{"id", "person id <text:1-50>"})
	return cmd
}

func (a *App) personGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a person with everything they own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personID, err := requireString(cmd, "id")
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			p, err := a.svc.GetPerson(ctx, id.PersonID(personID))
			if err != nil {
				return err
			}
			detail := render.PersonDetail{Person: p}
			if detail.Addresses, err = a.svc.ListAddresses(ctx, p.ID); err != nil {
				return err
			}
			if detail.Relationships, err = a.svc.ListRelationships(ctx, p.ID); err != nil {
				return err
			}
			if detail.Employments, err = a.svc.ListEmployments(ctx, p.ID); err != nil {
				return err
			}
			return render.Person(cmd.OutOrStdout(), detail)
		},
	}
	addFlags(cmd, flagSpec{"id", "person id <text:1-50>"})
	return cmd
}

func (a *App) personListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			people, err := a.svc.ListPeople(cmd.Context())
			if err != nil {
				return err
			}
			return render.People(cmd.OutOrStdout(), people)
		},
	}
}

func addPictureGuard(cmd *cobra.Command) {
	cmd.Flags().String("picture", "", "")
	_ = cmd.Flags().MarkHidden("picture")
}

func rejectPicture(cmd *cobra.Command) error {
	if cmd.Flags().Changed("picture") {
		return dErrors.New(dErrors.CodeBadRequest, "picture must be set with: person picture --id <id> --file <path>")
	}
	return nil
}

func personFromFlags(cmd *cobra.Command) (models.Person, error) {
	r := &flagReader{cmd: cmd}
	p := models.Person{
		FirstName:   r.str("first"),
		MiddleName:  r.opt("middle"),
		LastName:    r.str("last"),
		DateOfBirth: r.date("dob"),
		Gender:      readEnum(r, "gender", id.ParseGender),
	}
	kind := readEnum(r, "preferred-gender", id.ParsePreferredGenderType)
	if r.err != nil {
		return models.Person{}, r.err
	}
	if kind == id.PreferredGenderOther {
		label, err := requireString(cmd, "preferred-gender-other")
		if err != nil {
			return models.Person{}, err
		}
		p.PreferredGender = models.PreferredGenderOther(label)
	} else {
		p.PreferredGender = models.PreferredGenderOf(kind)
	}
	return p, nil
}
