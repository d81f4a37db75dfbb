package report

import (
	"eventdesk/internal/domain"
	"eventdesk/internal/planning"
)

// ReportRow is one project line of the monthly report.
type ReportRow struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Client   string               `json:"client"`
	Location string               `json:"location"`
	Quote    float64              `json:"quote"`
	Start    string               `json:"start"`
	End      string               `json:"end"`
	Status   domain.ProjectStatus `json:"status"`
	Revenue  float64              `json:"revenue"`
	Cost     float64              `json:"cost"`
	Profit   float64              `json:"profit"`
}

type MonthlyReportResponse struct {
	Month        string      `json:"month"`
	Rows         []ReportRow `json:"rows"`
	TotalRevenue float64     `json:"total_revenue"`
	TotalCost    float64     `json:"total_cost"`
	TotalProfit  float64     `json:"total_profit"`
}

func toRow(p domain.Project) ReportRow {
	row := ReportRow{
		ID:       p.ID,
		Name:     p.Name,
		Client:   p.Client,
		Location: p.Location,
		Quote:    p.Quote,
		Status:   p.Status,
		Revenue:  p.Revenue,
		Cost:     p.Cost,
		Profit:   planning.Profit(p),
	}
	if p.StartDate != nil {
		row.Start = planning.DayKey(*p.StartDate)
	}
	if p.EndDate != nil {
		row.End = planning.DayKey(*p.EndDate)
	}
	return row
}

func toResponse(month string, r planning.MonthlyReport) MonthlyReportResponse {
	rows := make([]ReportRow, 0, len(r.Rows))
	for _, p := range r.Rows {
		rows = append(rows, toRow(p))
	}
	return MonthlyReportResponse{
		Month:        month,
		Rows:         rows,
		TotalRevenue: r.TotalRevenue,
		TotalCost:    r.TotalCost,
		TotalProfit:  r.TotalProfit,
	}
}
