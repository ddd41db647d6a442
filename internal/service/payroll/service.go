package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	entrySource   attendance.EntrySource
	policyRepo    payroll.PolicyRepository
	deductionRepo payroll.DeductionRepository
	workerRepo    registry.WorkerRepository
}

func NewPayrollService(
	entrySource attendance.EntrySource,
	policyRepo payroll.PolicyRepository,
	deductionRepo payroll.DeductionRepository,
	workerRepo registry.WorkerRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		entrySource:   entrySource,
		policyRepo:    policyRepo,
		deductionRepo: deductionRepo,
		workerRepo:    workerRepo,
	}
}

// ========== PIPELINE ==========

func (s *PayrollServiceImpl) BuildRecords(ctx context.Context, req payroll.PeriodRequest) (payroll.ListRecordsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ListRecordsResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	entries, err := s.entrySource.FetchRange(ctx, start, end, req.SiteID, req.WorkerID)
	if err != nil {
		return payroll.ListRecordsResponse{}, fmt.Errorf("failed to fetch attendance entries: %w", err)
	}

	rate, err := s.resolveRate(ctx, end)
	if err != nil {
		return payroll.ListRecordsResponse{}, err
	}

	response := payroll.ListRecordsResponse{
		PeriodStart: req.StartDate,
		PeriodEnd:   req.EndDate,
		SiteID:      req.SiteID,
		Records:     []payroll.RecordResponse{},
		TaxRate:     rate,
	}

	// Empty period is a valid outcome, reported explicitly.
	if len(entries) == 0 {
		return response, nil
	}
	response.HasData = true

	aggregates := Aggregate(entries)

	// Stored deductions are keyed by billing month; a range spanning months
	// has no single month to resolve them against.
	singleMonth := start.Year() == end.Year() && start.Month() == end.Month()
	deductionsByWorker := make(map[string]map[string]decimal.Decimal)
	if singleMonth {
		stored, err := s.deductionRepo.ListByPeriod(ctx, start.Year(), int(start.Month()))
		if err != nil {
			return payroll.ListRecordsResponse{}, fmt.Errorf("failed to list worker deductions: %w", err)
		}
		for _, d := range stored {
			items, ok := deductionsByWorker[d.WorkerID]
			if !ok {
				items = make(map[string]decimal.Decimal)
				deductionsByWorker[d.WorkerID] = items
			}
			items[d.Name] = items[d.Name].Add(d.Amount)
		}
	} else {
		response.Warnings = appendWarning(response.Warnings, payroll.WarnMultiMonthRange)
	}

	// Registry lookup decorates display names only; it never feeds the
	// numeric computation.
	var workerIDs []string
	for _, agg := range aggregates {
		if agg.WorkerID != nil {
			workerIDs = append(workerIDs, *agg.WorkerID)
		}
	}
	workers, err := s.workerRepo.GetByIDs(ctx, workerIDs)
	if err != nil {
		return payroll.ListRecordsResponse{}, fmt.Errorf("failed to resolve workers: %w", err)
	}

	nameFallbackSeen := false
	for _, agg := range aggregates {
		record := Calculate(agg)

		var items map[string]decimal.Decimal
		if record.WorkerID != nil {
			items = deductionsByWorker[*record.WorkerID]
		}
		record = ApplyPolicy(record, rate, items)

		if record.WorkerID != nil {
			if w, ok := workers[*record.WorkerID]; ok {
				record.Name = w.Name
				if record.TeamName == nil {
					record.TeamName = w.TeamName
				}
			}
		}
		if record.NameFallback {
			nameFallbackSeen = true
		}

		response.Records = append(response.Records, mapRecordResponse(record))
	}

	if nameFallbackSeen {
		response.Warnings = appendWarning(response.Warnings, payroll.WarnNameFallback)
		slog.Warn("attendance entries grouped by worker name",
			slog.String("period_start", req.StartDate),
			slog.String("period_end", req.EndDate),
		)
	}

	return response, nil
}

func (s *PayrollServiceImpl) resolveRate(ctx context.Context, periodEnd time.Time) (decimal.Decimal, error) {
	policy, err := s.policyRepo.GetPolicyForDate(ctx, periodEnd)
	if err != nil {
		if errors.Is(err, payroll.ErrTaxPolicyNotFound) {
			return payroll.StatutoryRate, nil
		}
		return decimal.Zero, err
	}
	return policy.Rate, nil
}

// ========== TAX POLICY ==========

func (s *PayrollServiceImpl) CreateTaxPolicy(ctx context.Context, req payroll.CreateTaxPolicyRequest) (payroll.TaxPolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.TaxPolicyResponse{}, err
	}

	rate, _ := decimal.NewFromString(req.Rate)
	from, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	policy := payroll.TaxPolicy{
		ID:            uuid.NewString(),
		Rate:          rate,
		EffectiveFrom: from,
	}
	if req.EffectiveTo != nil {
		to, _ := time.Parse("2006-01-02", *req.EffectiveTo)
		policy.EffectiveTo = &to
	}

	created, err := s.policyRepo.CreatePolicy(ctx, policy)
	if err != nil {
		return payroll.TaxPolicyResponse{}, err
	}

	return mapTaxPolicyResponse(created), nil
}

func (s *PayrollServiceImpl) ListTaxPolicies(ctx context.Context) ([]payroll.TaxPolicyResponse, error) {
	policies, err := s.policyRepo.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.TaxPolicyResponse, 0, len(policies))
	for _, p := range policies {
		result = append(result, mapTaxPolicyResponse(p))
	}
	return result, nil
}

// ========== WORKER DEDUCTIONS ==========

func (s *PayrollServiceImpl) AddDeduction(ctx context.Context, req payroll.CreateDeductionRequest) (payroll.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return payroll.DeductionResponse{}, err
	}

	amount, _ := decimal.NewFromString(req.Amount)
	created, err := s.deductionRepo.Create(ctx, payroll.WorkerDeduction{
		ID:          uuid.NewString(),
		WorkerID:    req.WorkerID,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
		Name:        req.Name,
		Amount:      amount,
	})
	if err != nil {
		return payroll.DeductionResponse{}, err
	}

	return mapDeductionResponse(created), nil
}

func (s *PayrollServiceImpl) ListDeductions(ctx context.Context, workerID string, year, month int) ([]payroll.DeductionResponse, error) {
	deductions, err := s.deductionRepo.ListByWorkerPeriod(ctx, workerID, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		result = append(result, mapDeductionResponse(d))
	}
	return result, nil
}

func (s *PayrollServiceImpl) RemoveDeduction(ctx context.Context, id string) error {
	return s.deductionRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapRecordResponse(r payroll.Record) payroll.RecordResponse {
	deductions := payroll.DeductionsResponse{Total: decimal.Zero}
	warnings := r.Warnings
	if r.Deductions != nil {
		deductions = payroll.DeductionsResponse{
			IncomeTax: r.Deductions.IncomeTax,
			Items:     r.Deductions.Items,
			Total:     r.Deductions.Total(),
		}
	} else {
		warnings = appendWarning(warnings, payroll.WarnDeductionsUnresolved)
	}

	return payroll.RecordResponse{
		WorkerID:   r.WorkerID,
		WorkerName: r.Name,
		TeamName:   r.TeamName,
		Gongsu:     r.Gongsu,
		GrossPay:   r.GrossPay,
		UnitPrice:  r.UnitPrice,
		Deductions: deductions,
		NetPay:     r.NetPay,
		Days:       r.Days.Days(),
		Warnings:   warnings,
	}
}

func mapTaxPolicyResponse(p payroll.TaxPolicy) payroll.TaxPolicyResponse {
	var toStr *string
	if p.EffectiveTo != nil {
		str := p.EffectiveTo.Format("2006-01-02")
		toStr = &str
	}

	return payroll.TaxPolicyResponse{
		ID:            p.ID,
		Rate:          p.Rate,
		EffectiveFrom: p.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:   toStr,
	}
}

func mapDeductionResponse(d payroll.WorkerDeduction) payroll.DeductionResponse {
	return payroll.DeductionResponse{
		ID:          d.ID,
		WorkerID:    d.WorkerID,
		PeriodYear:  d.PeriodYear,
		PeriodMonth: d.PeriodMonth,
		Name:        d.Name,
		Amount:      d.Amount,
	}
}
