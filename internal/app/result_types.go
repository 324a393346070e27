package app

import (
	"token-report/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

// ReportResult is returned by GenerateReport.
type ReportResult struct {
	OutputFile     string
	Lines          int
	Companies      []core.CompanySummary
	UsersToppedUp  int
	UnmatchedUsers int
	TotalTopUp     decimal.Decimal
}

// SchemaResult is returned by InputSchemas.
type SchemaResult struct {
	Users     *jsonschema.Schema `json:"users"`
	Companies *jsonschema.Schema `json:"companies"`
}
