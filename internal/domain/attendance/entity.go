package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one worker's contribution on one daily site report.
// SiteName is denormalized from the site registry at ingestion time so
// historical entries keep the name the report was filed under.
type Entry struct {
	ID         string
	WorkDate   time.Time // calendar day, no time-of-day component
	SiteID     string
	SiteName   string
	WorkerID   *string // nil on legacy rows; grouping falls back to the name
	WorkerName string
	TeamName   *string
	Role       *string
	ManDay     decimal.Decimal // gongsu, typically 0.1 increments
	UnitPrice  int64           // won per man-day
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Amount is always derived from ManDay and UnitPrice, never stored.
func (e Entry) Amount() decimal.Decimal {
	return e.ManDay.Mul(decimal.NewFromInt(e.UnitPrice))
}

// Day returns the calendar day-of-month (1..31) of the entry.
func (e Entry) Day() int {
	return e.WorkDate.Day()
}
