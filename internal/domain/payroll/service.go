package payroll

import "context"

// PayrollService runs the aggregation pipeline and manages the policy inputs
// it depends on (tax versions, stored deductions).
type PayrollService interface {
	// BuildRecords runs fetch -> aggregate -> calculate -> apply policy for
	// the given query and returns one record per worker present in the range.
	// An empty period is a valid outcome, never an error.
	BuildRecords(ctx context.Context, req PeriodRequest) (ListRecordsResponse, error)

	// Tax policy versions
	CreateTaxPolicy(ctx context.Context, req CreateTaxPolicyRequest) (TaxPolicyResponse, error)
	ListTaxPolicies(ctx context.Context) ([]TaxPolicyResponse, error)

	// Stored itemized deductions
	AddDeduction(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	ListDeductions(ctx context.Context, workerID string, year, month int) ([]DeductionResponse, error)
	RemoveDeduction(ctx context.Context, id string) error
}
