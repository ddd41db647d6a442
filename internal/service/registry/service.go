package registry

import (
	"context"

	"github.com/google/uuid"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
)

type RegistryService interface {
	// Worker operations
	CreateWorker(ctx context.Context, req registry.CreateWorkerRequest) (registry.WorkerResponse, error)
	GetWorker(ctx context.Context, id string) (registry.WorkerResponse, error)
	ListWorkers(ctx context.Context) ([]registry.WorkerResponse, error)

	// Site operations
	CreateSite(ctx context.Context, req registry.CreateSiteRequest) (registry.SiteResponse, error)
	GetSite(ctx context.Context, id string) (registry.SiteResponse, error)
	ListSites(ctx context.Context, activeOnly bool) ([]registry.SiteResponse, error)
}

type registryServiceImpl struct {
	workerRepo registry.WorkerRepository
	siteRepo   registry.SiteRepository
}

func NewRegistryService(workerRepo registry.WorkerRepository, siteRepo registry.SiteRepository) RegistryService {
	return &registryServiceImpl{
		workerRepo: workerRepo,
		siteRepo:   siteRepo,
	}
}

// ==================== WORKER OPERATIONS ====================

func (s *registryServiceImpl) CreateWorker(ctx context.Context, req registry.CreateWorkerRequest) (registry.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return registry.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, registry.Worker{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
		Category:    req.Category,
		TeamName:    req.TeamName,
	})
	if err != nil {
		return registry.WorkerResponse{}, err
	}

	return mapWorkerResponse(created), nil
}

func (s *registryServiceImpl) GetWorker(ctx context.Context, id string) (registry.WorkerResponse, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return registry.WorkerResponse{}, err
	}
	return mapWorkerResponse(worker), nil
}

func (s *registryServiceImpl) ListWorkers(ctx context.Context) ([]registry.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]registry.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, mapWorkerResponse(w))
	}
	return result, nil
}

// ==================== SITE OPERATIONS ====================

func (s *registryServiceImpl) CreateSite(ctx context.Context, req registry.CreateSiteRequest) (registry.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return registry.SiteResponse{}, err
	}

	created, err := s.siteRepo.Create(ctx, registry.Site{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Address: req.Address,
		Active:  true,
	})
	if err != nil {
		return registry.SiteResponse{}, err
	}

	return mapSiteResponse(created), nil
}

func (s *registryServiceImpl) GetSite(ctx context.Context, id string) (registry.SiteResponse, error) {
	site, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return registry.SiteResponse{}, err
	}
	return mapSiteResponse(site), nil
}

func (s *registryServiceImpl) ListSites(ctx context.Context, activeOnly bool) ([]registry.SiteResponse, error) {
	sites, err := s.siteRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]registry.SiteResponse, 0, len(sites))
	for _, site := range sites {
		result = append(result, mapSiteResponse(site))
	}
	return result, nil
}

func mapWorkerResponse(w registry.Worker) registry.WorkerResponse {
	return registry.WorkerResponse{
		ID:          w.ID,
		Name:        w.Name,
		Phone:       w.Phone,
		Address:     w.Address,
		BankName:    w.BankName,
		BankAccount: w.BankAccount,
		Category:    w.Category,
		TeamName:    w.TeamName,
	}
}

func mapSiteResponse(s registry.Site) registry.SiteResponse {
	return registry.SiteResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Active:  s.Active,
	}
}
