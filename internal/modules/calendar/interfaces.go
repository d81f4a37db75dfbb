package calendar

import (
	"context"

	"eventdesk/internal/domain"
)

// ProjectReader supplies the full project snapshot for one computation.
type ProjectReader interface {
	List(ctx context.Context, status string) ([]domain.Project, error)
}

// EquipmentReader supplies the full equipment snapshot for one computation.
type EquipmentReader interface {
	List(ctx context.Context) ([]domain.Equipment, error)
}
