package planning

import (
	"time"

	"eventdesk/internal/domain"
)

// MonthlyReport is the financial view of one month: every project touching
// the month (in full, never prorated) plus exact aggregate totals.
type MonthlyReport struct {
	Rows         []domain.Project `json:"rows"`
	TotalRevenue float64          `json:"total_revenue"`
	TotalCost    float64          `json:"total_cost"`
	TotalProfit  float64          `json:"total_profit"`
}

// Profit derives a project's profit from its stored revenue and cost. It is
// recomputed on every read and never persisted.
func Profit(p domain.Project) float64 {
	return p.Revenue - p.Cost
}

// IsProjectInMonth reports whether the project's date range overlaps the
// [first, last] month bounds at all. This is interval overlap, not
// containment: touching a single day of the month is enough.
func IsProjectInMonth(p domain.Project, first, last time.Time) bool {
	if p.StartDate == nil || p.EndDate == nil {
		return false
	}
	return !p.EndDate.Before(first) && !p.StartDate.After(last)
}

// BuildMonthlyReport selects every project overlapping yearMonth and sums
// revenue, cost, and derived profit across the selection. An unparseable
// yearMonth yields an empty report.
func BuildMonthlyReport(yearMonth string, projects []domain.Project) MonthlyReport {
	report := MonthlyReport{Rows: []domain.Project{}}

	first, last, ok := MonthBounds(yearMonth)
	if !ok {
		return report
	}

	for _, p := range projects {
		if !IsProjectInMonth(p, first, last) {
			continue
		}
		report.Rows = append(report.Rows, p)
		report.TotalRevenue += p.Revenue
		report.TotalCost += p.Cost
		report.TotalProfit += Profit(p)
	}

	return report
}
