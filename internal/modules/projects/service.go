package projects

import (
	"context"
	"errors"
	"strings"

	"eventdesk/internal/domain"
	"eventdesk/internal/planning"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	projects ProjectRepository
	cache    SnapshotCache
	notifier ChangeNotifier
}

func NewService(projects ProjectRepository, cache SnapshotCache, notifier ChangeNotifier) *Service {
	return &Service{
		projects: projects,
		cache:    cache,
		notifier: notifier,
	}
}

func (s *Service) Create(ctx context.Context, req ProjectRequest) (*domain.Project, error) {
	p, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}

	s.dataChanged()
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.Project, error) {
	status = strings.TrimSpace(status)
	if status != "" && !domain.ProjectStatus(status).Valid() {
		return nil, ErrValidation
	}
	return s.projects.List(ctx, status)
}

func (s *Service) Update(ctx context.Context, id string, req ProjectRequest) (*domain.Project, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}

	s.dataChanged()
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.dataChanged()
	return nil
}

// fromRequest validates and normalizes a request into a domain project:
// dates must parse and be ordered, money fields clamp to non-negative,
// usage entries with empty names or non-positive quantities are dropped.
func (s *Service) fromRequest(req ProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	status := domain.ProjectStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.StatusPlanning
	}
	if !status.Valid() {
		return nil, ErrValidation
	}

	start, ok := planning.ParseDay(req.StartDate)
	if !ok {
		return nil, ErrValidation
	}
	end, ok := planning.ParseDay(req.EndDate)
	if !ok {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrValidation
	}

	usages := make([]domain.UsageEntry, 0, len(req.EquipmentsUsed))
	for _, u := range req.EquipmentsUsed {
		entryName := strings.TrimSpace(u.Name)
		if entryName == "" || u.Qty <= 0 {
			continue
		}
		usages = append(usages, domain.UsageEntry{Name: entryName, Qty: u.Qty})
	}

	return &domain.Project{
		Name:           name,
		Client:         strings.TrimSpace(req.Client),
		Location:       strings.TrimSpace(req.Location),
		Status:         status,
		StartDate:      &start,
		EndDate:        &end,
		Revenue:        clampMoney(req.Revenue),
		Cost:           clampMoney(req.Cost),
		Quote:          clampMoney(req.Quote),
		EquipmentsUsed: usages,
	}, nil
}

func (s *Service) dataChanged() {
	version := s.cache.Bump()
	if s.notifier != nil {
		s.notifier.NotifyDataChanged("projects", version)
	}
}

func clampMoney(v float64) float64 {
	if v < 0 || v != v { // negative or NaN
		return 0
	}
	return v
}
