package projects

import (
	"context"

	"eventdesk/internal/domain"
)

// ProjectRepository — only the methods the projects service uses
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, status string) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// SnapshotCache is bumped after every successful write so month overuse
// results computed against the old snapshot can never be served.
type SnapshotCache interface {
	Bump() uint64
}

// ChangeNotifier pushes a data-change event to connected dashboards.
type ChangeNotifier interface {
	NotifyDataChanged(resource string, version uint64)
}
