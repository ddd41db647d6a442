package payroll

import (
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ApplyPolicy resolves the deduction block of a record: withholding tax at
// the given rate, floored to the won, plus the caller-supplied named items.
// Net pay is recomputed from scratch; applying the policy twice with the same
// inputs yields an identical record.
//
// Negative net pay is kept as computed and flagged, never clamped.
func ApplyPolicy(record payroll.Record, rate decimal.Decimal, items map[string]decimal.Decimal) payroll.Record {
	deductions := payroll.Deductions{
		IncomeTax: record.GrossPay.Mul(rate).Floor(),
	}
	if len(items) > 0 {
		deductions.Items = make(map[string]decimal.Decimal, len(items))
		for name, amount := range items {
			deductions.Items[name] = amount
		}
	}

	record.Deductions = &deductions
	record.NetPay = record.GrossPay.Sub(deductions.Total())

	if record.NetPay.IsNegative() {
		record.Warnings = appendWarning(record.Warnings, payroll.WarnNegativeNetPay)
	}

	return record
}
