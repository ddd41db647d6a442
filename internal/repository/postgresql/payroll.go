package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/database"
)

// ========== TAX POLICY ==========

type taxPolicyRepository struct {
	db *database.DB
}

func NewTaxPolicyRepository(db *database.DB) payroll.PolicyRepository {
	return &taxPolicyRepository{db: db}
}

func (r *taxPolicyRepository) CreatePolicy(ctx context.Context, policy payroll.TaxPolicy) (payroll.TaxPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_policies (id, rate, effective_from, effective_to)
		VALUES ($1, $2, $3, $4)
		RETURNING id, rate, effective_from, effective_to, created_at
	`

	var p payroll.TaxPolicy
	err := q.QueryRow(ctx, query, policy.ID, policy.Rate, policy.EffectiveFrom, policy.EffectiveTo).Scan(
		&p.ID, &p.Rate, &p.EffectiveFrom, &p.EffectiveTo, &p.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "ex_tax_policies_range") {
			return payroll.TaxPolicy{}, payroll.ErrTaxPolicyOverlap
		}
		return payroll.TaxPolicy{}, fmt.Errorf("failed to create tax policy: %w", err)
	}

	return p, nil
}

func (r *taxPolicyRepository) ListPolicies(ctx context.Context) ([]payroll.TaxPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, rate, effective_from, effective_to, created_at
		FROM tax_policies
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax policies: %w", err)
	}
	defer rows.Close()

	var policies []payroll.TaxPolicy
	for rows.Next() {
		var p payroll.TaxPolicy
		if err := rows.Scan(&p.ID, &p.Rate, &p.EffectiveFrom, &p.EffectiveTo, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tax policy: %w", err)
		}
		policies = append(policies, p)
	}

	return policies, nil
}

func (r *taxPolicyRepository) GetPolicyForDate(ctx context.Context, date time.Time) (payroll.TaxPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, rate, effective_from, effective_to, created_at
		FROM tax_policies
		WHERE effective_from <= $1
		  AND (effective_to IS NULL OR effective_to >= $1)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var p payroll.TaxPolicy
	err := q.QueryRow(ctx, query, date).Scan(&p.ID, &p.Rate, &p.EffectiveFrom, &p.EffectiveTo, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.TaxPolicy{}, payroll.ErrTaxPolicyNotFound
		}
		return payroll.TaxPolicy{}, fmt.Errorf("failed to resolve tax policy: %w", err)
	}

	return p, nil
}

// ========== WORKER DEDUCTIONS ==========

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) payroll.DeductionRepository {
	return &deductionRepository{db: db}
}

func (r *deductionRepository) Create(ctx context.Context, deduction payroll.WorkerDeduction) (payroll.WorkerDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_deductions (id, worker_id, period_year, period_month, name, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, worker_id, period_year, period_month, name, amount, created_at
	`

	var d payroll.WorkerDeduction
	err := q.QueryRow(ctx, query,
		deduction.ID, deduction.WorkerID, deduction.PeriodYear, deduction.PeriodMonth,
		deduction.Name, deduction.Amount,
	).Scan(&d.ID, &d.WorkerID, &d.PeriodYear, &d.PeriodMonth, &d.Name, &d.Amount, &d.CreatedAt)
	if err != nil {
		return payroll.WorkerDeduction{}, fmt.Errorf("failed to create worker deduction: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) ListByWorkerPeriod(ctx context.Context, workerID string, year, month int) ([]payroll.WorkerDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, period_year, period_month, name, amount, created_at
		FROM worker_deductions
		WHERE worker_id = $1 AND period_year = $2 AND period_month = $3
		ORDER BY created_at
	`

	return r.queryDeductions(ctx, q, query, workerID, year, month)
}

func (r *deductionRepository) ListByPeriod(ctx context.Context, year, month int) ([]payroll.WorkerDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, period_year, period_month, name, amount, created_at
		FROM worker_deductions
		WHERE period_year = $1 AND period_month = $2
		ORDER BY worker_id, created_at
	`

	return r.queryDeductions(ctx, q, query, year, month)
}

func (r *deductionRepository) queryDeductions(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payroll.WorkerDeduction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker deductions: %w", err)
	}
	defer rows.Close()

	var deductions []payroll.WorkerDeduction
	for rows.Next() {
		var d payroll.WorkerDeduction
		if err := rows.Scan(&d.ID, &d.WorkerID, &d.PeriodYear, &d.PeriodMonth, &d.Name, &d.Amount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, nil
}

func (r *deductionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM worker_deductions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrDeductionNotFound
	}

	return nil
}
