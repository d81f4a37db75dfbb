package planning

import (
	"strings"
	"time"

	"eventdesk/internal/domain"
)

// ProjectShare attributes part of a day's demand for one equipment item to
// the project that requires it.
type ProjectShare struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Qty         int    `json:"qty"`
}

// EquipmentDemand is the total demand for one equipment item on one day,
// with per-project attribution.
type EquipmentDemand struct {
	Required int            `json:"required"`
	Projects []ProjectShare `json:"projects"`
}

// DayUsage is the result of aggregating one calendar day across a project
// snapshot. ActiveProjects feeds calendar rendering; Usage feeds the
// overuse comparison.
type DayUsage struct {
	Usage          map[string]*EquipmentDemand `json:"usage"`
	ActiveProjects []domain.Project            `json:"active_projects"`
}

// ComputeUsageForDate selects every project whose inclusive [start, end]
// range contains day and accumulates its usage entries into per-equipment
// totals. Entries with an empty trimmed name or non-positive quantity never
// count toward demand.
func ComputeUsageForDate(day time.Time, projects []domain.Project) DayUsage {
	result := DayUsage{
		Usage:          make(map[string]*EquipmentDemand),
		ActiveProjects: []domain.Project{},
	}

	for _, p := range projects {
		if !contains(day, p.StartDate, p.EndDate) {
			continue
		}
		result.ActiveProjects = append(result.ActiveProjects, p)

		for _, u := range p.EquipmentsUsed {
			name := strings.TrimSpace(u.Name)
			if name == "" || u.Qty <= 0 {
				continue
			}
			d, ok := result.Usage[name]
			if !ok {
				d = &EquipmentDemand{}
				result.Usage[name] = d
			}
			d.Required += u.Qty
			d.Projects = append(d.Projects, ProjectShare{
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Qty:         u.Qty,
			})
		}
	}

	return result
}
