package http

import (
	"encoding/json"
	"net/http"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/sejin-enc/laborcost-backend-go/internal/handler/http/response"
	registryService "github.com/sejin-enc/laborcost-backend-go/internal/service/registry"
	"github.com/go-chi/chi/v5"
)

type RegistryHandler interface {
	CreateWorker(w http.ResponseWriter, r *http.Request)
	GetWorker(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
	CreateSite(w http.ResponseWriter, r *http.Request)
	GetSite(w http.ResponseWriter, r *http.Request)
	ListSites(w http.ResponseWriter, r *http.Request)
}

type registryHandlerImpl struct {
	registryService registryService.RegistryService
}

func NewRegistryHandler(service registryService.RegistryService) RegistryHandler {
	return &registryHandlerImpl{
		registryService: service,
	}
}

// CreateWorker implements RegistryHandler.
func (h *registryHandlerImpl) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req registry.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.registryService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker registered", result)
}

// GetWorker implements RegistryHandler.
func (h *registryHandlerImpl) GetWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.registryService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListWorkers implements RegistryHandler.
func (h *registryHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	result, err := h.registryService.ListWorkers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateSite implements RegistryHandler.
func (h *registryHandlerImpl) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req registry.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.registryService.CreateSite(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site registered", result)
}

// GetSite implements RegistryHandler.
func (h *registryHandlerImpl) GetSite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	result, err := h.registryService.GetSite(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSites implements RegistryHandler.
func (h *registryHandlerImpl) ListSites(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.registryService.ListSites(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
