package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"token-report/internal/app"
	"token-report/internal/core"

	goversion "github.com/caarlos0/go-version"
)

// Streams are where Run prints. Stdout carries user-facing output, Stderr
// carries fatal error messages.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes one command and returns the process exit code.
// args is os.Args[1:]; an empty args runs the report.
// This is the only place fatal errors are reported to the user.
func Run(ctx context.Context, svc app.ApplicationService, version goversion.Info, args []string, s Streams) int {
	cmd := "run"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "run", "r":
		result, err := svc.GenerateReport(ctx)
		if err != nil {
			fmt.Fprintln(s.Stderr, ErrorMessage(err))
			return 1
		}
		fmt.Fprintf(s.Stdout, "Output written to %s\n", result.OutputFile)

	case "schema":
		result, err := svc.InputSchemas(ctx)
		if err != nil {
			fmt.Fprintln(s.Stderr, ErrorMessage(err))
			return 1
		}
		enc := json.NewEncoder(s.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(s.Stderr, ErrorMessage(err))
			return 1
		}

	case "version":
		fmt.Fprintln(s.Stdout, version.String())

	default:
		fmt.Fprintf(s.Stderr, "Unknown command: %s\nAvailable: run, schema, version\n", cmd)
		return 2
	}
	return 0
}

// ErrorMessage renders err as the single line shown to the user.
func ErrorMessage(err error) string {
	var (
		notFound *core.NotFoundError
		parseErr *core.ParseError
		invalid  *core.ValidationError
		writeErr *core.WriteError
	)
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("Error: File %s not found.", notFound.Path)
	case errors.As(err, &parseErr):
		return fmt.Sprintf("Error: File %s contains invalid JSON.", parseErr.Path)
	case errors.As(err, &invalid):
		if invalid.Index < 0 {
			return fmt.Sprintf("Error: File %s field %s %s.", invalid.Path, invalid.Field, invalid.Reason)
		}
		return fmt.Sprintf("Error: File %s record %d field %s %s.", invalid.Path, invalid.Index, invalid.Field, invalid.Reason)
	case errors.As(err, &writeErr):
		return fmt.Sprintf("Error: Unable to write to file %s.", writeErr.Path)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
