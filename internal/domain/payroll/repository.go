package payroll

import (
	"context"
	"time"
)

// PolicyRepository stores versioned withholding rates.
type PolicyRepository interface {
	CreatePolicy(ctx context.Context, policy TaxPolicy) (TaxPolicy, error)
	ListPolicies(ctx context.Context) ([]TaxPolicy, error)

	// GetPolicyForDate resolves the version whose effective range covers the
	// given date. ErrTaxPolicyNotFound when no row covers it; the caller then
	// falls back to StatutoryRate.
	GetPolicyForDate(ctx context.Context, date time.Time) (TaxPolicy, error)
}

// DeductionRepository stores itemized deductions per worker and billing month.
type DeductionRepository interface {
	Create(ctx context.Context, deduction WorkerDeduction) (WorkerDeduction, error)
	ListByWorkerPeriod(ctx context.Context, workerID string, year, month int) ([]WorkerDeduction, error)
	ListByPeriod(ctx context.Context, year, month int) ([]WorkerDeduction, error)
	Delete(ctx context.Context, id string) error
}
