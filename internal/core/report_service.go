package core

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ── Report types ──────────────────────────────────────────────────────────────

// CompanySummary describes one company section of a generated report.
type CompanySummary struct {
	CompanyID   int
	CompanyName string
	ActiveUsers int
	Emailed     int
	NotEmailed  int
	TotalTopUp  decimal.Decimal
}

// Report is the output of ReportService.Build.
// Lines is the ordered report text, one element per output line except user
// blocks, which are a single element holding three newline-separated lines.
// UnmatchedUsers counts users whose company_id is not in the index.
type Report struct {
	Lines          []string
	Companies      []CompanySummary
	UnmatchedUsers int
}

// TotalTopUp is the sum of every company total in the report.
func (r *Report) TotalTopUp() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Companies {
		total = total.Add(c.TotalTopUp)
	}
	return total
}

// UsersToppedUp is the number of users credited across all companies.
func (r *Report) UsersToppedUp() int {
	n := 0
	for _, c := range r.Companies {
		n += c.ActiveUsers
	}
	return n
}

// ── Interface ─────────────────────────────────────────────────────────────────

// ReportService turns loaded users and companies into the top-up report.
type ReportService interface {
	// Build credits each active user with their company's top-up and returns
	// the report grouped by company in ascending id order. users is modified
	// in place: Tokens of every reported user is increased by the top-up.
	Build(users []User, index CompanyIndex) *Report
}

// ── Implementation ────────────────────────────────────────────────────────────

type reportService struct{}

// NewReportService constructs a ReportService.
func NewReportService() ReportService {
	return &reportService{}
}

func (s *reportService) Build(users []User, index CompanyIndex) *Report {
	report := &Report{UnmatchedUsers: countUnmatched(users, index)}

	for _, companyID := range index.SortedIDs() {
		company, ok := index[companyID]
		if !ok {
			continue
		}

		report.Lines = append(report.Lines,
			fmt.Sprintf("\tCompany Id: %d", company.ID),
			fmt.Sprintf("\tCompany Name: %s", company.Name),
			"\tUsers Emailed:",
		)

		active := activeUsersOf(users, companyID)
		summary := CompanySummary{
			CompanyID:   company.ID,
			CompanyName: company.Name,
			ActiveUsers: len(active),
			TotalTopUp:  decimal.Zero,
		}

		var emailed, notEmailed []string
		for _, u := range active {
			previous := u.Tokens
			u.Tokens = u.Tokens.Add(company.TopUp)
			summary.TotalTopUp = summary.TotalTopUp.Add(company.TopUp)

			block := formatUserBlock(u, previous)
			if u.EmailStatus {
				emailed = append(emailed, block)
			} else {
				notEmailed = append(notEmailed, block)
			}
		}
		summary.Emailed = len(emailed)
		summary.NotEmailed = len(notEmailed)

		report.Lines = append(report.Lines, emailed...)
		if len(notEmailed) > 0 {
			report.Lines = append(report.Lines, "\tUsers Not Emailed:")
			report.Lines = append(report.Lines, notEmailed...)
		}
		report.Lines = append(report.Lines,
			fmt.Sprintf("\tTotal amount of top ups for %s: %s", company.Name, summary.TotalTopUp),
			"",
		)
		report.Companies = append(report.Companies, summary)
	}
	return report
}

// activeUsersOf returns pointers into users for the active members of a
// company, stably sorted by last name.
func activeUsersOf(users []User, companyID int) []*User {
	var active []*User
	for i := range users {
		if users[i].CompanyID == companyID && users[i].ActiveStatus {
			active = append(active, &users[i])
		}
	}
	sort.SliceStable(active, func(a, b int) bool {
		return active[a].LastName < active[b].LastName
	})
	return active
}

func formatUserBlock(u *User, previous decimal.Decimal) string {
	return fmt.Sprintf("\t\t%s, %s, %s\n\t\t  Previous Token Balance, %s\n\t\t  New Token Balance %s",
		u.LastName, u.FirstName, u.Email, previous, u.Tokens)
}

func countUnmatched(users []User, index CompanyIndex) int {
	n := 0
	for _, u := range users {
		if _, ok := index[u.CompanyID]; !ok {
			n++
		}
	}
	return n
}
