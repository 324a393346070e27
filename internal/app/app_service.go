package app

import (
	"context"
	"log/slog"

	"token-report/internal/config"
	"token-report/internal/core"
)

type appService struct {
	cfg    *config.Config
	report core.ReportService
	logger *slog.Logger
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(cfg *config.Config, report core.ReportService, logger *slog.Logger) ApplicationService {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &appService{cfg: cfg, report: report, logger: logger}
}

// GenerateReport runs load, index, build and write in that order.
func (s *appService) GenerateReport(ctx context.Context) (*ReportResult, error) {
	users, err := core.LoadUsers(s.cfg.UsersFile)
	if err != nil {
		return nil, err
	}
	companies, err := core.LoadCompanies(s.cfg.CompaniesFile)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("inputs loaded", "users", len(users), "companies", len(companies))

	index, duplicates := core.NewCompanyIndex(companies)
	for _, id := range duplicates {
		s.logger.Warn("duplicate company id, keeping the later record", "company_id", id)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := s.report.Build(users, index)
	if report.UnmatchedUsers > 0 {
		s.logger.Debug("users without a matching company left out of the report", "count", report.UnmatchedUsers)
	}
	for _, c := range report.Companies {
		s.logger.Debug("company reported",
			"company_id", c.CompanyID,
			"active_users", c.ActiveUsers,
			"not_emailed", c.NotEmailed,
			"total_top_up", c.TotalTopUp.String(),
		)
	}

	if err := core.WriteLines(s.cfg.OutputFile, report.Lines); err != nil {
		return nil, err
	}
	s.logger.Info("report written", "path", s.cfg.OutputFile, "lines", len(report.Lines))

	return &ReportResult{
		OutputFile:     s.cfg.OutputFile,
		Lines:          len(report.Lines),
		Companies:      report.Companies,
		UsersToppedUp:  report.UsersToppedUp(),
		UnmatchedUsers: report.UnmatchedUsers,
		TotalTopUp:     report.TotalTopUp(),
	}, nil
}

// InputSchemas returns the schemas reflected from the record types.
func (s *appService) InputSchemas(ctx context.Context) (*SchemaResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &SchemaResult{
		Users:     core.UsersSchema(),
		Companies: core.CompaniesSchema(),
	}, nil
}
