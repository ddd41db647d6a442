package payroll

import (
	"time"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// DayPresenceSet holds the calendar-day numbers (1..31) on which a worker has
// at least one attendance entry. Membership is idempotent: duplicate entries
// on the same day keep the day in the set exactly once.
type DayPresenceSet map[int]struct{}

func (s DayPresenceSet) Add(day int) {
	s[day] = struct{}{}
}

func (s DayPresenceSet) Contains(day int) bool {
	_, ok := s[day]
	return ok
}

// Days returns the sorted day numbers. The set itself carries no order;
// rendering always places markers by day index.
func (s DayPresenceSet) Days() []int {
	days := make([]int, 0, len(s))
	for d := 1; d <= 31; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// WorkerAggregate is the aggregator output for one worker in one query:
// the deduplicated presence set plus every contributing entry.
type WorkerAggregate struct {
	WorkerKey    string // worker id, or normalized name on legacy rows
	WorkerID     *string
	Name         string
	TeamName     *string
	NameFallback bool // grouped without a stable worker id
	Days         DayPresenceSet
	Entries      []attendance.Entry
}

// Deductions is the itemized deduction block of a record. IncomeTax is
// computed by the tax policy; Items are caller-supplied named amounts
// (advance, lodging, utilities, deposit, fines). The engine sums them, it
// never originates them.
type Deductions struct {
	IncomeTax decimal.Decimal            `json:"income_tax"`
	Items     map[string]decimal.Decimal `json:"items,omitempty"`
}

// Total sums every line item including tax.
func (d Deductions) Total() decimal.Decimal {
	total := d.IncomeTax
	for _, amount := range d.Items {
		total = total.Add(amount)
	}
	return total
}

// Computation anomaly warnings surfaced alongside the numeric result.
// Anomalies are reported, never auto-corrected.
const (
	WarnNegativeNetPay       = "net pay is negative"
	WarnZeroGongsuPay        = "nonzero gross pay with zero gongsu"
	WarnNameFallback         = "entries grouped by worker name; stable worker id missing"
	WarnMultiMonthRange      = "date range spans multiple months; stored deductions not applied"
	WarnDeductionsUnresolved = "deductions were not resolved; zero block substituted"
)

// Record is one worker's payroll result for one period. It is ephemeral:
// computed fresh per query, never persisted by the engine.
//
// Deductions stays nil until the policy step resolves every line item; NetPay
// is only meaningful once Deductions is set and always equals
// GrossPay - Deductions.Total().
type Record struct {
	WorkerKey    string
	WorkerID     *string
	Name         string
	TeamName     *string
	NameFallback bool
	Gongsu       decimal.Decimal
	GrossPay     decimal.Decimal
	UnitPrice    int64 // derived average for display, round(gross/gongsu)
	Deductions   *Deductions
	NetPay       decimal.Decimal
	Days         DayPresenceSet
	Warnings     []string
}

// TaxPolicy is a versioned withholding rate. The statutory 3.3% lives in code
// only as the fallback for periods no row covers; rate changes are new rows,
// not parameters.
type TaxPolicy struct {
	ID            string
	Rate          decimal.Decimal // e.g. 0.033
	EffectiveFrom time.Time
	EffectiveTo   *time.Time // nil = open ended
	CreatedAt     time.Time
}

// StatutoryRate is the default withholding rate (3.3% business income tax).
var StatutoryRate = decimal.New(33, -3)

// WorkerDeduction is a stored itemized deduction for one worker and one
// billing month, e.g. an advance paid out mid-month.
type WorkerDeduction struct {
	ID          string
	WorkerID    string
	PeriodYear  int
	PeriodMonth int
	Name        string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
