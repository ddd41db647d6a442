package payroll

import (
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PeriodRequest is the explicit query object driving one pipeline run.
type PeriodRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	SiteID    *string `json:"site_id,omitempty"`
	WorkerID  *string `json:"worker_id,omitempty"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionsResponse struct {
	IncomeTax decimal.Decimal            `json:"income_tax"`
	Items     map[string]decimal.Decimal `json:"items,omitempty"`
	Total     decimal.Decimal            `json:"total"`
}

type RecordResponse struct {
	WorkerID   *string            `json:"worker_id,omitempty"`
	WorkerName string             `json:"worker_name"`
	TeamName   *string            `json:"team_name,omitempty"`
	Gongsu     decimal.Decimal    `json:"gongsu"`
	GrossPay   decimal.Decimal    `json:"gross_pay"`
	UnitPrice  int64              `json:"unit_price"` // derived average, display only
	Deductions DeductionsResponse `json:"deductions"`
	NetPay     decimal.Decimal    `json:"net_pay"`
	Days       []int              `json:"days"` // presence set, sorted day numbers
	Warnings   []string           `json:"warnings,omitempty"`
}

// ListRecordsResponse carries the whole result of one pipeline run. HasData
// distinguishes an empty period from a query that was never issued.
type ListRecordsResponse struct {
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`
	SiteID      *string          `json:"site_id,omitempty"`
	Records     []RecordResponse `json:"records"`
	HasData     bool             `json:"has_data"`
	TaxRate     decimal.Decimal  `json:"tax_rate"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// ========== TAX POLICY DTOs ==========

type CreateTaxPolicyRequest struct {
	Rate          string  `json:"rate"` // decimal fraction, e.g. "0.033"
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
}

func (r *CreateTaxPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	rate, err := decimal.NewFromString(r.Rate)
	switch {
	case err != nil:
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be a decimal fraction"})
	case rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)):
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be in [0, 1)"})
	}

	from, okFrom := validator.IsValidDate(r.EffectiveFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EffectiveTo != nil {
		to, okTo := validator.IsValidDate(*r.EffectiveTo)
		if !okTo {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if okFrom && to.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must not be before effective_from"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaxPolicyResponse struct {
	ID            string          `json:"id"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
}

// ========== WORKER DEDUCTION DTOs ==========

type CreateDeductionRequest struct {
	WorkerID    string `json:"-"`
	PeriodYear  int    `json:"period_year"`
	PeriodMonth int    `json:"period_month"`
	Name        string `json:"name"`
	Amount      string `json:"amount"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	amount, err := decimal.NewFromString(r.Amount)
	switch {
	case err != nil:
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a decimal number"})
	case amount.IsNegative():
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	PeriodYear  int             `json:"period_year"`
	PeriodMonth int             `json:"period_month"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}
