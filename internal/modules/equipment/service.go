package equipment

import (
	"context"
	"errors"
	"strings"

	"eventdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	equipment EquipmentRepository
	cache     SnapshotCache
	notifier  ChangeNotifier
}

func NewService(equipment EquipmentRepository, cache SnapshotCache, notifier ChangeNotifier) *Service {
	return &Service{
		equipment: equipment,
		cache:     cache,
		notifier:  notifier,
	}
}

func (s *Service) Create(ctx context.Context, req EquipmentRequest) (*domain.Equipment, error) {
	e, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()

	if err := s.equipment.Create(ctx, e); err != nil {
		if isDuplicateName(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.dataChanged()
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req EquipmentRequest) (*domain.Equipment, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	e, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt

	if err := s.equipment.Update(ctx, e); err != nil {
		if isDuplicateName(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.dataChanged()
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.dataChanged()
	return nil
}

func (s *Service) fromRequest(req EquipmentRequest) (*domain.Equipment, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	qty := req.Qty
	if qty < 0 {
		qty = 0
	}

	return &domain.Equipment{
		Name: name,
		Qty:  qty,
		Note: strings.TrimSpace(req.Note),
	}, nil
}

func (s *Service) dataChanged() {
	version := s.cache.Bump()
	if s.notifier != nil {
		s.notifier.NotifyDataChanged("equipment", version)
	}
}

// isDuplicateName detects the unique-index violation on equipment.name across
// both backends: gorm's translated error, the raw Postgres 23505, and the
// modernc sqlite message that gorm's sqlite translator does not recognize.
func isDuplicateName(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
