package payroll

import "errors"

var (
	ErrTaxPolicyNotFound  = errors.New("tax policy not found")
	ErrTaxPolicyOverlap   = errors.New("tax policy effective range overlaps an existing version")
	ErrDeductionNotFound  = errors.New("worker deduction not found")
	ErrWorkerNotRequested = errors.New("worker has no entries and was not requested by identity")
)
