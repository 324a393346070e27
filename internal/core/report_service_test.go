package core_test

import (
	"strings"
	"testing"

	"token-report/internal/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func user(companyID int, active, emailed bool, last, first string, tokens int64) core.User {
	return core.User{
		CompanyID:    companyID,
		ActiveStatus: active,
		EmailStatus:  emailed,
		LastName:     last,
		FirstName:    first,
		Email:        strings.ToLower(first) + "@example.com",
		Tokens:       decimal.NewFromInt(tokens),
	}
}

func company(id int, name string, topUp int64) core.Company {
	return core.Company{ID: id, Name: name, TopUp: decimal.NewFromInt(topUp)}
}

func buildReport(users []core.User, companies ...core.Company) *core.Report {
	index, _ := core.NewCompanyIndex(companies)
	return core.NewReportService().Build(users, index)
}

func TestReport_SingleEmailedUser(t *testing.T) {
	users := []core.User{{
		CompanyID: 1, ActiveStatus: true, EmailStatus: true,
		LastName: "Doe", FirstName: "Jane", Email: "j@x.com",
		Tokens: decimal.NewFromInt(5),
	}}

	report := buildReport(users, company(1, "Acme", 10))

	assert.Equal(t, []string{
		"\tCompany Id: 1",
		"\tCompany Name: Acme",
		"\tUsers Emailed:",
		"\t\tDoe, Jane, j@x.com\n\t\t  Previous Token Balance, 5\n\t\t  New Token Balance 15",
		"\tTotal amount of top ups for Acme: 10",
		"",
	}, report.Lines)
	assert.True(t, users[0].Tokens.Equal(decimal.NewFromInt(15)), "tokens are credited in place")
	assert.NotContains(t, strings.Join(report.Lines, "\n"), "Users Not Emailed:")
}

func TestReport_FullLayout(t *testing.T) {
	users := []core.User{
		user(2, true, false, "Zed", "Zoe", 1),
		user(1, true, true, "Smith", "Ann", 0),
		user(1, false, true, "Adams", "Inactive", 100),
		user(1, true, false, "Brown", "Bob", 7),
		user(1, true, true, "Clark", "Cat", 3),
		user(9, true, true, "Orphan", "Olive", 1),
	}

	report := buildReport(users, company(2, "Beta", 5), company(1, "Acme", 10))

	want := strings.Join([]string{
		"\tCompany Id: 1",
		"\tCompany Name: Acme",
		"\tUsers Emailed:",
		"\t\tClark, Cat, cat@example.com",
		"\t\t  Previous Token Balance, 3",
		"\t\t  New Token Balance 13",
		"\t\tSmith, Ann, ann@example.com",
		"\t\t  Previous Token Balance, 0",
		"\t\t  New Token Balance 10",
		"\tUsers Not Emailed:",
		"\t\tBrown, Bob, bob@example.com",
		"\t\t  Previous Token Balance, 7",
		"\t\t  New Token Balance 17",
		"\tTotal amount of top ups for Acme: 30",
		"",
		"\tCompany Id: 2",
		"\tCompany Name: Beta",
		"\tUsers Emailed:",
		"\tUsers Not Emailed:",
		"\t\tZed, Zoe, zoe@example.com",
		"\t\t  Previous Token Balance, 1",
		"\t\t  New Token Balance 6",
		"\tTotal amount of top ups for Beta: 5",
		"",
	}, "\n")
	assert.Equal(t, want, strings.Join(report.Lines, "\n"))

	assert.True(t, users[2].Tokens.Equal(decimal.NewFromInt(100)), "inactive users are not credited")
	assert.True(t, users[5].Tokens.Equal(decimal.NewFromInt(1)), "unmatched users are not credited")
	assert.Equal(t, 1, report.UnmatchedUsers)
	assert.NotContains(t, want, "Inactive")
	assert.NotContains(t, want, "Orphan")

	require.Len(t, report.Companies, 2)
	assert.Equal(t, "Acme", report.Companies[0].CompanyName)
	assert.Equal(t, 3, report.Companies[0].ActiveUsers)
	assert.Equal(t, 2, report.Companies[0].Emailed)
	assert.Equal(t, 1, report.Companies[0].NotEmailed)
	assert.True(t, report.Companies[0].TotalTopUp.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 4, report.UsersToppedUp())
	assert.True(t, report.TotalTopUp().Equal(decimal.NewFromInt(35)))
}

func TestReport_CompanyWithoutActiveUsers(t *testing.T) {
	users := []core.User{user(1, false, true, "Doe", "Jane", 5)}

	report := buildReport(users, company(1, "Acme", 10))

	assert.Equal(t, []string{
		"\tCompany Id: 1",
		"\tCompany Name: Acme",
		"\tUsers Emailed:",
		"\tTotal amount of top ups for Acme: 0",
		"",
	}, report.Lines)
}

func TestReport_NoCompanies(t *testing.T) {
	report := buildReport([]core.User{user(1, true, true, "Doe", "Jane", 5)})

	assert.Empty(t, report.Lines)
	assert.Equal(t, 1, report.UnmatchedUsers)
}

func TestReport_StableSortByLastNameOnly(t *testing.T) {
	users := []core.User{
		user(1, true, true, "Lee", "Zara", 0),
		user(1, true, true, "Kim", "Max", 0),
		user(1, true, true, "Lee", "Adam", 0),
	}

	report := buildReport(users, company(1, "Acme", 1))

	var names []string
	for _, line := range report.Lines {
		if strings.HasPrefix(line, "\t\t") {
			names = append(names, strings.SplitN(strings.TrimPrefix(line, "\t\t"), ",", 3)[1])
		}
	}
	assert.Equal(t, []string{" Max", " Zara", " Adam"}, names, "ties keep input order")
}

func TestReport_CompaniesInAscendingIDOrder(t *testing.T) {
	report := buildReport(nil, company(10, "Ten", 1), company(2, "Two", 1), company(7, "Seven", 1))

	var ids []string
	for _, line := range report.Lines {
		if strings.HasPrefix(line, "\tCompany Id: ") {
			ids = append(ids, strings.TrimPrefix(line, "\tCompany Id: "))
		}
	}
	assert.Equal(t, []string{"2", "7", "10"}, ids)
}

func TestReport_TopUpInvariants(t *testing.T) {
	users := []core.User{
		user(1, true, true, "A", "a", 1),
		user(1, true, false, "B", "b", 2),
		user(1, true, true, "C", "c", 3),
		user(2, true, true, "D", "d", 4),
	}
	before := make([]decimal.Decimal, len(users))
	for i, u := range users {
		before[i] = u.Tokens
	}
	topUps := map[int]decimal.Decimal{1: decimal.RequireFromString("2.5"), 2: decimal.NewFromInt(4)}

	report := buildReport(users,
		core.Company{ID: 1, Name: "One", TopUp: topUps[1]},
		core.Company{ID: 2, Name: "Two", TopUp: topUps[2]},
	)

	for i, u := range users {
		assert.True(t, u.Tokens.Equal(before[i].Add(topUps[u.CompanyID])), "user %d", i)
	}
	for _, c := range report.Companies {
		want := topUps[c.CompanyID].Mul(decimal.NewFromInt(int64(c.ActiveUsers)))
		assert.True(t, c.TotalTopUp.Equal(want), "company %d", c.CompanyID)
	}
	assert.Contains(t, report.Lines, "\tTotal amount of top ups for One: 7.5")
	assert.Contains(t, report.Lines, "\t\tB, b, b@example.com\n\t\t  Previous Token Balance, 2\n\t\t  New Token Balance 4.5")
}
