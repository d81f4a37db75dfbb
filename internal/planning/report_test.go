package planning

import (
	"testing"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfit(t *testing.T) {
	p := domain.Project{Revenue: 100000, Cost: 40000}
	assert.Equal(t, 60000.0, Profit(p))

	assert.Equal(t, -500.0, Profit(domain.Project{Revenue: 0, Cost: 500}))
}

func TestIsProjectInMonthBoundaryCrossing(t *testing.T) {
	p := project("tour", "2024-05-28", "2024-06-03")

	for month, want := range map[string]bool{
		"2024-05": true,
		"2024-06": true,
		"2024-07": false,
		"2024-04": false,
	} {
		first, last, ok := MonthBounds(month)
		require.True(t, ok)
		assert.Equal(t, want, IsProjectInMonth(p, first, last), month)
	}
}

func TestIsProjectInMonthMissingDates(t *testing.T) {
	first, last, ok := MonthBounds("2024-06")
	require.True(t, ok)

	assert.False(t, IsProjectInMonth(domain.Project{}, first, last))
	assert.False(t, IsProjectInMonth(domain.Project{StartDate: dayPtr("2024-06-10")}, first, last))
	assert.False(t, IsProjectInMonth(domain.Project{EndDate: dayPtr("2024-06-10")}, first, last))
}

func TestBuildMonthlyReportTotals(t *testing.T) {
	inside := project("expo", "2024-06-05", "2024-06-08")
	inside.Revenue, inside.Cost = 100000, 40000
	crossing := project("tour", "2024-05-28", "2024-06-03")
	crossing.Revenue, crossing.Cost = 50000, 20000
	outside := project("gala", "2024-07-01", "2024-07-02")
	outside.Revenue, outside.Cost = 999999, 1

	report := BuildMonthlyReport("2024-06", []domain.Project{inside, crossing, outside})

	// partially overlapping projects count in full, never prorated
	require.Len(t, report.Rows, 2)
	assert.Equal(t, 150000.0, report.TotalRevenue)
	assert.Equal(t, 60000.0, report.TotalCost)
	assert.Equal(t, 90000.0, report.TotalProfit)

	var sum float64
	for _, row := range report.Rows {
		sum += Profit(row)
	}
	assert.Equal(t, report.TotalProfit, sum)
}

func TestBuildMonthlyReportCountsEachProjectOnce(t *testing.T) {
	p := project("expo", "2024-06-01", "2024-06-30")
	p.Revenue, p.Cost = 100000, 40000

	report := BuildMonthlyReport("2024-06", []domain.Project{p})

	require.Len(t, report.Rows, 1)
	assert.Equal(t, 60000.0, report.TotalProfit)
}

func TestBuildMonthlyReportInvalidMonth(t *testing.T) {
	p := project("expo", "2024-06-01", "2024-06-30")

	report := BuildMonthlyReport("junk", []domain.Project{p})

	assert.Empty(t, report.Rows)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.TotalCost)
	assert.Zero(t, report.TotalProfit)
}

func TestBuildMonthlyReportIdempotent(t *testing.T) {
	p := project("expo", "2024-06-01", "2024-06-30")
	p.Revenue, p.Cost = 100000, 40000
	projects := []domain.Project{p}

	assert.Equal(t, BuildMonthlyReport("2024-06", projects), BuildMonthlyReport("2024-06", projects))
}
