package registry

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, worker Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]Worker, error)
	List(ctx context.Context) ([]Worker, error)
}

type SiteRepository interface {
	Create(ctx context.Context, site Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context, activeOnly bool) ([]Site, error)
}
