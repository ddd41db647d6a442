package invoice

import "context"

// InvoiceService assembles the two statement shapes. Both derive from the
// same payroll record + presence set pair produced by one pipeline run;
// renderers consume the result as-is and never re-derive totals.
type InvoiceService interface {
	// SiteGrid builds the site-wide day-by-day grid for one billing month.
	SiteGrid(ctx context.Context, req SiteGridRequest) (SiteGridResponse, error)

	// WorkerStatement builds the single-worker itemized statement. The worker
	// is requested by identity, so a zero record is an acceptable result for
	// a month without entries.
	WorkerStatement(ctx context.Context, req WorkerStatementRequest) (WorkerStatementResponse, error)
}
