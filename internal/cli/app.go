// Package cli is the command surface of the people registry. Every command
// goes through the domain service; nothing here touches a store.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"people/internal/audit"
	"people/internal/people/models"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
	"people/pkg/requestcontext"
)

// Service is the domain surface the commands drive.
type Service interface {
	CreatePerson(ctx context.Context, p models.Person) (*models.Person, error)
	UpdatePerson(ctx context.Context, p models.Person) (*models.Person, error)
	SetPicture(ctx context.Context, personID id.PersonID, path string) (*models.Person, error)
	DeletePerson(ctx context.Context, personID id.PersonID) (*models.Person, error)
	GetPerson(ctx context.Context, personID id.PersonID) (*models.Person, error)
	ListPeople(ctx context.Context) ([]*models.Person, error)

	CreateAddress(ctx context.Context, a models.Address) (*models.Address, error)
	UpdateAddress(ctx context.Context, a models.Address) (*models.Address, error)
	DeleteAddress(ctx context.Context, personID id.PersonID, addressID id.AddressID) (*models.Address, error)
	GetAddress(ctx context.Context, personID id.PersonID, addressID id.AddressID) (*models.Address, error)
	ListAddresses(ctx context.Context, personID id.PersonID) ([]*models.Address, error)
	ListAddressesFiltered(ctx context.Context, f models.AddressFilter) ([]*models.Address, error)

	CreateEmployment(ctx context.Context, e models.Employment) (*models.Employment, error)
	UpdateEmployment(ctx context.Context, e models.Employment) (*models.Employment, error)
	DeleteEmployment(ctx context.Context, personID id.PersonID, employmentID id.EmploymentID) (*models.Employment, error)
	GetEmployment(ctx context.Context, personID id.PersonID, employmentID id.EmploymentID) (*models.Employment, error)
	ListEmployments(ctx context.Context, personID id.PersonID) ([]*models.Employment, error)
	ListAllEmployments(ctx context.Context) ([]*models.Employment, error)
	ListCompanies(ctx context.Context) ([]*models.CompanySummary, error)

	CreateRelationship(ctx context.Context, r models.Relationship) (*models.Relationship, error)
	UpdateRelationship(ctx context.Context, r models.Relationship) (*models.Relationship, error)
	DeleteRelationship(ctx context.Context, personID id.PersonID, relationshipID id.RelationshipID) (*models.Relationship, error)
	GetRelationship(ctx context.Context, personID id.PersonID, relationshipID id.RelationshipID) (*models.Relationship, error)
	ListRelationships(ctx context.Context, personID id.PersonID) ([]*models.Relationship, error)
}

// AuditLog reads back the audit trail.
type AuditLog interface {
	List(ctx context.Context, personID id.PersonID) ([]audit.Event, error)
	ListAll(ctx context.Context) ([]audit.Event, error)
}

// App wires the command tree to a service.
type App struct {
	svc      Service
	audit    AuditLog
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	prompt   string
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	newID    func() string
}

type Option func(*App)

func WithAuditLog(log AuditLog) Option {
	return func(a *App) { a.audit = log }
}

func WithGatherer(g prometheus.Gatherer) Option {
	return func(a *App) { a.gatherer = g }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithPrompt sets the interactive prompt; "> " is appended.
func WithPrompt(prompt string) Option {
	return func(a *App) { a.prompt = prompt }
}

func WithInput(in io.Reader) Option {
	return func(a *App) { a.in = in }
}

func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

func New(svc Service, opts ...Option) *App {
	a := &App{
		svc:    svc,
		prompt: "people",
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		newID:  id.NewID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs one command line. Each run gets its own request id so audit
// events from one command can be correlated.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	ctx = requestcontext.WithRequestID(ctx, a.newID())
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	if !errors.As(err, &de) {
		// cobra's own failures are unknown commands and malformed arguments
		return dErrors.Wrap(err, dErrors.CodeBadRequest, err.Error())
	}
	if a.logger != nil {
		a.logger.DebugContext(ctx, "command failed",
			"request_id", requestcontext.RequestID(ctx),
			"code", de.Code,
			"error", err,
		)
	}
	return err
}

// Command builds a fresh command tree for a single run.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "people",
		Short:         "Manage people, their addresses, employment and relationships",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, err.Error())
	})
	root.AddCommand(
		a.personCommand(),
		a.addressCommand(),
		a.employmentCommand(),
		a.relationshipCommand(),
		a.companyCommand(),
		a.auditCommand(),
		a.statsCommand(),
		a.shellCommand(),
	)
	return root
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation:
		return 2
	case dErrors.CodeNotFound:
		return 3
	case dErrors.CodeConflict:
		return 4
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return 5
	default:
		return 1
	}
}

// ErrorLine is the one-line form of err shown to the user.
func ErrorLine(err error) string {
	return "error: " + dErrors.Message(err)
}
