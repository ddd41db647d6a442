package http

import (
	"net/http"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/invoice"
	"github.com/sejin-enc/laborcost-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	SiteGrid(w http.ResponseWriter, r *http.Request)
	WorkerStatement(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{
		invoiceService: invoiceService,
	}
}

// SiteGrid implements InvoiceHandler. Missing site or month selection is a
// request error before any fetch happens.
func (h *invoiceHandlerImpl) SiteGrid(w http.ResponseWriter, r *http.Request) {
	req := invoice.SiteGridRequest{
		SiteID: r.URL.Query().Get("site_id"),
		Month:  r.URL.Query().Get("month"),
	}

	result, err := h.invoiceService.SiteGrid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WorkerStatement implements InvoiceHandler.
func (h *invoiceHandlerImpl) WorkerStatement(w http.ResponseWriter, r *http.Request) {
	req := invoice.WorkerStatementRequest{
		WorkerID: r.URL.Query().Get("worker_id"),
		Month:    r.URL.Query().Get("month"),
		SiteID:   optionalQueryParam(r, "site_id"),
	}

	result, err := h.invoiceService.WorkerStatement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
