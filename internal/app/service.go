package app

import "context"

// ApplicationService is the single interface the CLI adapter calls.
// It decouples presentation from the report pipeline. Implementations must
// contain no fmt.Println and no display logic of any kind; fatal conditions
// are returned as errors for the caller to report.
type ApplicationService interface {
	// GenerateReport loads the users and companies documents, credits every
	// active user with their company's top-up and writes the report to the
	// configured output file. Nothing is written when loading fails.
	GenerateReport(ctx context.Context) (*ReportResult, error)

	// InputSchemas returns the JSON Schemas of the two input documents.
	InputSchemas(ctx context.Context) (*SchemaResult, error)
}
