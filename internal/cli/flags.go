package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
)

// Every flag is registered as a string; typed parsing happens in the readers
// below.

type flagSpec struct {
	name  string
	usage string
}

func addFlags(cmd *cobra.Command, specs ...flagSpec) {
	for _, s := range specs {
		cmd.Flags().String(s.name, "", s.usage)
	}
}

// addIDGuard registers a hidden --id that rejectID refuses.
func addIDGuard(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "")
	_ = cmd.Flags().MarkHidden("id")
}

func rejectID(cmd *cobra.Command) error {
	if cmd.Flags().Changed("id") {
		return dErrors.New(dErrors.CodeBadRequest, "id is auto-generated; omit --id")
	}
	return nil
}

func optionalString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func requireString(cmd *cobra.Command, name string) (string, error) {
	v := optionalString(cmd, name)
	if strings.TrimSpace(v) == "" {
		return "", dErrors.Newf(dErrors.CodeBadRequest, "missing required --%s", name)
	}
	return v, nil
}

func requireBool(cmd *cobra.Command, name string) (bool, error) {
	v, err := requireString(cmd, name)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, dErrors.Newf(dErrors.CodeInvalidInput, "invalid value for --%s; expected true or false", name)
	}
	return b, nil
}

func requireInt(cmd *cobra.Command, name string) (int, error) {
	v, err := requireString(cmd, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "invalid number for --%s: %s", name, v)
	}
	return n, nil
}

func requireDate(cmd *cobra.Command, name string) (time.Time, error) {
	v, err := requireString(cmd, name)
	if err != nil {
		return time.Time{}, err
	}
	return id.ParseDate(v, "--"+name)
}

// optionalDate returns nil when the flag is absent or blank.
func optionalDate(cmd *cobra.Command, name string) (*time.Time, error) {
	v := optionalString(cmd, name)
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := id.ParseDate(v, "--"+name)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func requireMoney(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	v, err := requireString(cmd, name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return id.ParseMoney(v, "--"+name)
}

// requireEnum reads a required flag through one of the domain enum parsers.
func requireEnum[T ~string](cmd *cobra.Command, name string, parse func(string) (T, error)) (T, error) {
	v, err := requireString(cmd, name)
	if err != nil {
		return "", err
	}
	return parse(v)
}

func personIDFlag(cmd *cobra.Command) (id.PersonID, error) {
	v, err := requireString(cmd, "person-id")
	return id.PersonID(v), err
}

// flagReader keeps the first error across a run of flag reads.
type flagReader struct {
	cmd *cobra.Command
	err error
}

func (r *flagReader) str(name string) string {
	if r.err != nil {
		return ""
	}
	v, err := requireString(r.cmd, name)
	r.err = err
	return v
}

func (r *flagReader) opt(name string) string {
	return optionalString(r.cmd, name)
}

func (r *flagReader) boolean(name string) bool {
	if r.err != nil {
		return false
	}
	v, err := requireBool(r.cmd, name)
	r.err = err
	return v
}

func (r *flagReader) integer(name string) int {
	if r.err != nil {
		return 0
	}
	v, err := requireInt(r.cmd, name)
	r.err = err
	return v
}

func (r *flagReader) date(name string) time.Time {
	if r.err != nil {
		return time.Time{}
	}
	v, err := requireDate(r.cmd, name)
	r.err = err
	return v
}

func (r *flagReader) optDate(name string) *time.Time {
	if r.err != nil {
		return nil
	}
	v, err := optionalDate(r.cmd, name)
	r.err = err
	return v
}

func (r *flagReader) money(name string) decimal.Decimal {
	if r.err != nil {
		return decimal.Decimal{}
	}
	v, err := requireMoney(r.cmd, name)
	r.err = err
	return v
}

func readEnum[T ~string](r *flagReader, name string, parse func(string) (T, error)) T {
	if r.err != nil {
		return ""
	}
	v, err := requireEnum(r.cmd, name, parse)
	r.err = err
	return v
}
