package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	dErrors "people/pkg/domain-errors"
)

func (a *App) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively; type help for commands and exit to quit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.RunShell(cmd.Context())
		},
	}
}

// RunShell reads command lines until exit, end of input or ctx is done. A
// failing line is reported and the loop continues.
func (a *App) RunShell(ctx context.Context) error {
	lines, done, scanErr := a.readLines()
	defer close(done)
	for {
		fmt.Fprintf(a.out, "%s> ", a.prompt)
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(a.out)
			return *scanErr
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintln(a.errOut, ErrorLine(dErrors.Wrap(err, dErrors.CodeBadRequest, "could not parse line: "+err.Error())))
			continue
		}
		if len(args) == 0 {
			continue
		}
		switch strings.ToLower(args[0]) {
		case "exit", "quit":
			return nil
		case "shell":
			fmt.Fprintln(a.errOut, ErrorLine(dErrors.New(dErrors.CodeBadRequest, "already in the shell")))
			continue
		}

		if err := a.Execute(ctx, args); err != nil {
			fmt.Fprintln(a.errOut, ErrorLine(err))
		}
	}
}

// readLines scans a.in on its own goroutine so the loop can stop on an
// interrupt while a read is blocked. lines is closed at end of input, after
// which *scanErr holds the scanner error. Closing done releases the reader.
func (a *App) readLines() (lines <-chan string, done chan struct{}, scanErr *error) {
	out := make(chan string)
	done = make(chan struct{})
	scanErr = new(error)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-done:
				return
			}
		}
		*scanErr = scanner.Err()
	}()
	return out, done, scanErr
}
