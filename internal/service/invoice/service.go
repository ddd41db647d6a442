package invoice

import (
	"context"
	"time"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/invoice"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/validator"
)

type InvoiceServiceImpl struct {
	payrollService payroll.PayrollService
	workerRepo     registry.WorkerRepository
	siteRepo       registry.SiteRepository
}

func NewInvoiceService(
	payrollService payroll.PayrollService,
	workerRepo registry.WorkerRepository,
	siteRepo registry.SiteRepository,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		payrollService: payrollService,
		workerRepo:     workerRepo,
		siteRepo:       siteRepo,
	}
}

// SiteGrid runs the payroll pipeline for one site and billing month and
// arranges the result into the day-by-day grid. Nothing is persisted; a
// repeated call recomputes from current attendance rows.
func (s *InvoiceServiceImpl) SiteGrid(ctx context.Context, req invoice.SiteGridRequest) (invoice.SiteGridResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.SiteGridResponse{}, err
	}

	site, err := s.siteRepo.GetByID(ctx, req.SiteID)
	if err != nil {
		return invoice.SiteGridResponse{}, err
	}

	start, end := monthBounds(req.Month)
	result, err := s.payrollService.BuildRecords(ctx, payroll.PeriodRequest{
		StartDate: start,
		EndDate:   end,
		SiteID:    &req.SiteID,
	})
	if err != nil {
		return invoice.SiteGridResponse{}, err
	}

	workers, err := s.gridWorkers(ctx, result.Records)
	if err != nil {
		return invoice.SiteGridResponse{}, err
	}

	grid := AssembleGrid(site.ID, site.Name, req.Month, result.Records, workers)
	for _, w := range result.Warnings {
		grid.Warnings = appendWarning(grid.Warnings, w)
	}

	return grid, nil
}

// WorkerStatement runs the pipeline for one worker and billing month. The
// worker is addressed by identity, so a month with no attendance is a valid
// zero statement, not an error.
func (s *InvoiceServiceImpl) WorkerStatement(ctx context.Context, req invoice.WorkerStatementRequest) (invoice.WorkerStatementResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.WorkerStatementResponse{}, err
	}

	worker, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return invoice.WorkerStatementResponse{}, err
	}

	start, end := monthBounds(req.Month)
	result, err := s.payrollService.BuildRecords(ctx, payroll.PeriodRequest{
		StartDate: start,
		EndDate:   end,
		SiteID:    req.SiteID,
		WorkerID:  &req.WorkerID,
	})
	if err != nil {
		return invoice.WorkerStatementResponse{}, err
	}

	record := zeroRecord(worker)
	if len(result.Records) > 0 {
		record = result.Records[0]
	}

	statement := AssembleStatement(worker.ID, worker.Name, req.Month, req.SiteID, record)
	for _, w := range result.Warnings {
		statement.Warnings = appendWarning(statement.Warnings, w)
	}

	return statement, nil
}

// gridWorkers loads registered workers referenced by the records so the grid
// can carry phone and address columns. Rows grouped by name fallback have no
// id and stay undecorated.
func (s *InvoiceServiceImpl) gridWorkers(ctx context.Context, records []payroll.RecordResponse) (map[string]registry.Worker, error) {
	var ids []string
	for _, r := range records {
		if r.WorkerID != nil {
			ids = append(ids, *r.WorkerID)
		}
	}
	if len(ids) == 0 {
		return map[string]registry.Worker{}, nil
	}
	return s.workerRepo.GetByIDs(ctx, ids)
}

func monthBounds(month string) (string, string) {
	year, m, _ := validator.IsValidMonth(month)
	start := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// zeroRecord is the statement source for a worker with no attendance in the
// period: all sums zero, deductions explicitly zero, empty presence set.
func zeroRecord(worker registry.Worker) payroll.RecordResponse {
	return payroll.RecordResponse{
		WorkerID:   &worker.ID,
		WorkerName: worker.Name,
		TeamName:   worker.TeamName,
		Days:       []int{},
	}
}
