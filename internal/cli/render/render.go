// Package render formats people records for a terminal. Tables are aligned
// with text/tabwriter; sorting never touches the caller's slice.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

const (
	yes = "yes"
	no  = "no"
)

// Truncate shortens value to at most limit runes, ending in "..." when cut.
func Truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	keep := max(0, limit-3)
	return string(runes[:keep]) + "..."
}

func yesNo(b bool) string {
	if b {
		return yes
	}
	return no
}

// table writes a header row, a dashed rule, then rows, all tab-aligned.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.row(headers...)
	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}
	t.row(rule...)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

// fields writes "Label: value" lines in order.
type fields struct {
	w   io.Writer
	err error
}

func (f *fields) line(label string, value any) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, "%s: %v\n", label, value)
}

func empty(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}
