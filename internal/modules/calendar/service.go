package calendar

import (
	"context"

	"eventdesk/internal/planning"
)

type Service struct {
	projects  ProjectReader
	equipment EquipmentReader
	cache     *planning.Cache
}

func NewService(projects ProjectReader, equipment EquipmentReader, cache *planning.Cache) *Service {
	return &Service{
		projects:  projects,
		equipment: equipment,
		cache:     cache,
	}
}

// MonthOveruse returns the overuse map for yearMonth, serving a cached
// result when the snapshot has not changed since it was computed.
func (s *Service) MonthOveruse(ctx context.Context, yearMonth string) (map[string][]planning.OveruseEntry, error) {
	version := s.cache.Version()
	if cached, ok := s.cache.Get(yearMonth, version); ok {
		return cached, nil
	}

	projects, err := s.projects.List(ctx, "")
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipment.List(ctx)
	if err != nil {
		return nil, err
	}

	overuse := planning.BuildMonthOveruse(yearMonth, projects, equipment)
	s.cache.Put(yearMonth, version, overuse)
	return overuse, nil
}

// DayUsage aggregates demand and active projects for one calendar day.
func (s *Service) DayUsage(ctx context.Context, date string) (*DayUsageResponse, error) {
	day, ok := planning.ParseDay(date)
	if !ok {
		return nil, ErrInvalidDate
	}

	projects, err := s.projects.List(ctx, "")
	if err != nil {
		return nil, err
	}

	resp := toDayUsageResponse(planning.DayKey(day), planning.ComputeUsageForDate(day, projects))
	return &resp, nil
}
