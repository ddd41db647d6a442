package payroll

import (
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculate reduces one worker's aggregated entries into a payroll record.
//
// Gross pay sums per-entry amounts; unit prices may differ across days and
// sites, so it is never gongsu times an average. The average unit price is
// derived afterward for display only. Deductions stay unresolved here;
// ApplyPolicy completes the record.
func Calculate(agg payroll.WorkerAggregate) payroll.Record {
	gongsu := decimal.Zero
	gross := decimal.Zero
	for _, e := range agg.Entries {
		gongsu = gongsu.Add(e.ManDay)
		gross = gross.Add(e.Amount())
	}

	var unitPrice int64
	if gongsu.IsPositive() {
		unitPrice = gross.DivRound(gongsu, 0).IntPart()
	}

	record := payroll.Record{
		WorkerKey:    agg.WorkerKey,
		WorkerID:     agg.WorkerID,
		Name:         agg.Name,
		TeamName:     agg.TeamName,
		NameFallback: agg.NameFallback,
		Gongsu:       gongsu,
		GrossPay:     gross,
		UnitPrice:    unitPrice,
		Days:         agg.Days,
	}

	if agg.NameFallback {
		record.Warnings = appendWarning(record.Warnings, payroll.WarnNameFallback)
	}
	if gongsu.IsZero() && gross.IsPositive() {
		record.Warnings = appendWarning(record.Warnings, payroll.WarnZeroGongsuPay)
	}

	return record
}

func appendWarning(warnings []string, warning string) []string {
	for _, w := range warnings {
		if w == warning {
			return warnings
		}
	}
	return append(warnings, warning)
}
