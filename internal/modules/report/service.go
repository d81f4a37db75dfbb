package report

import (
	"context"

	"eventdesk/internal/domain"
	"eventdesk/internal/planning"
)

// ProjectReader supplies the full project snapshot for one computation.
type ProjectReader interface {
	List(ctx context.Context, status string) ([]domain.Project, error)
}

type Service struct {
	projects ProjectReader
}

func NewService(projects ProjectReader) *Service {
	return &Service{projects: projects}
}

// Monthly aggregates revenue, cost, and profit over every project that
// overlaps yearMonth. An unparseable month yields an empty report.
func (s *Service) Monthly(ctx context.Context, yearMonth string) (*MonthlyReportResponse, error) {
	projects, err := s.projects.List(ctx, "")
	if err != nil {
		return nil, err
	}

	resp := toResponse(yearMonth, planning.BuildMonthlyReport(yearMonth, projects))
	return &resp, nil
}

// MonthlyCSV renders the monthly report as a CSV export.
func (s *Service) MonthlyCSV(ctx context.Context, yearMonth string) ([]byte, error) {
	resp, err := s.Monthly(ctx, yearMonth)
	if err != nil {
		return nil, err
	}
	return writeCSV(resp.Rows)
}
