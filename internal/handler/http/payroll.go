package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/sejin-enc/laborcost-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	ListRecords(w http.ResponseWriter, r *http.Request)
	CreateTaxPolicy(w http.ResponseWriter, r *http.Request)
	ListTaxPolicies(w http.ResponseWriter, r *http.Request)
	AddDeduction(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
	RemoveDeduction(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ListRecords implements PayrollHandler. It runs the whole pipeline for the
// requested period and returns the computed records; nothing is stored.
func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	req := payroll.PeriodRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		SiteID:    optionalQueryParam(r, "site_id"),
		WorkerID:  optionalQueryParam(r, "worker_id"),
	}

	result, err := h.payrollService.BuildRecords(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateTaxPolicy implements PayrollHandler.
func (h *payrollHandlerImpl) CreateTaxPolicy(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateTaxPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreateTaxPolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tax policy created", result)
}

// ListTaxPolicies implements PayrollHandler.
func (h *payrollHandlerImpl) ListTaxPolicies(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListTaxPolicies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddDeduction implements PayrollHandler.
func (h *payrollHandlerImpl) AddDeduction(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	var req payroll.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = workerID

	result, err := h.payrollService.AddDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction recorded", result)
}

// ListDeductions implements PayrollHandler.
func (h *payrollHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	result, err := h.payrollService.ListDeductions(r.Context(), workerID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RemoveDeduction implements PayrollHandler.
func (h *payrollHandlerImpl) RemoveDeduction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Deduction ID is required", nil)
		return
	}

	if err := h.payrollService.RemoveDeduction(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction removed", nil)
}
