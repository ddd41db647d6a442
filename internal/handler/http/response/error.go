package response

import (
	"errors"
	"net/http"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrTaxPolicyNotFound):
		NotFound(w, "Tax policy not found")
	case errors.Is(err, payroll.ErrTaxPolicyOverlap):
		Conflict(w, "Tax policy period overlaps an existing policy")
	case errors.Is(err, payroll.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, payroll.ErrWorkerNotRequested):
		BadRequest(w, "Worker selection is required", nil)

	// Registry domain errors
	case errors.Is(err, registry.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, registry.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, registry.ErrSiteNameExists):
		Conflict(w, "Site name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
