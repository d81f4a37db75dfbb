package planning

import (
	"sort"

	"eventdesk/internal/domain"
)

// OveruseEntry records one equipment shortage on one day: demand strictly
// exceeded capacity, by Shortage units, attributed to the listed projects.
type OveruseEntry struct {
	Equipment string         `json:"equip"`
	Required  int            `json:"required"`
	Available int            `json:"available"`
	Shortage  int            `json:"shortage"`
	Projects  []ProjectShare `json:"projects"`
}

// BuildMonthOveruse walks every calendar day of yearMonth and compares
// aggregated demand against the inventory map. Only days with at least one
// shortage appear in the result, keyed by "YYYY-MM-DD". Equipment names with
// no inventory record count as zero capacity, not unlimited. An unparseable
// yearMonth yields an empty map.
func BuildMonthOveruse(yearMonth string, projects []domain.Project, equipment []domain.Equipment) map[string][]OveruseEntry {
	result := make(map[string][]OveruseEntry)

	first, last, ok := MonthBounds(yearMonth)
	if !ok {
		return result
	}

	inv := BuildInventoryMap(equipment)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		du := ComputeUsageForDate(day, projects)
		if len(du.Usage) == 0 {
			continue
		}

		names := make([]string, 0, len(du.Usage))
		for name := range du.Usage {
			names = append(names, name)
		}
		sort.Strings(names)

		var entries []OveruseEntry
		for _, name := range names {
			demand := du.Usage[name]
			available := inv[name]
			// strict: demand equal to capacity is not a shortage
			if demand.Required <= available {
				continue
			}
			entries = append(entries, OveruseEntry{
				Equipment: name,
				Required:  demand.Required,
				Available: available,
				Shortage:  demand.Required - available,
				Projects:  demand.Projects,
			})
		}

		if len(entries) > 0 {
			result[DayKey(day)] = entries
		}
	}

	return result
}
