package equipment

import (
	"context"

	"eventdesk/internal/domain"
)

// EquipmentRepository — only the methods the equipment service uses
type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id string) error
}

type SnapshotCache interface {
	Bump() uint64
}

type ChangeNotifier interface {
	NotifyDataChanged(resource string, version uint64)
}
