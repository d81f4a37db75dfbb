package calendar

import (
	"eventdesk/internal/domain"
	"eventdesk/internal/planning"
)

// ActiveProjectRow is the slim project view the calendar grid renders.
type ActiveProjectRow struct {
	ID     string               `json:"id"`
	Name   string               `json:"name"`
	Client string               `json:"client"`
	Status domain.ProjectStatus `json:"status"`
}

type DayUsageResponse struct {
	Date           string                               `json:"date"`
	Usage          map[string]*planning.EquipmentDemand `json:"usage"`
	ActiveProjects []ActiveProjectRow                   `json:"active_projects"`
}

func toDayUsageResponse(date string, du planning.DayUsage) DayUsageResponse {
	rows := make([]ActiveProjectRow, 0, len(du.ActiveProjects))
	for _, p := range du.ActiveProjects {
		rows = append(rows, ActiveProjectRow{
			ID:     p.ID,
			Name:   p.Name,
			Client: p.Client,
			Status: p.Status,
		})
	}
	return DayUsageResponse{
		Date:           date,
		Usage:          du.Usage,
		ActiveProjects: rows,
	}
}
