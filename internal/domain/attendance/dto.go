package attendance

import (
	"errors"

	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MaxDailyManDay is the plausible upper bound for one worker on one day.
// Field practice caps gongsu at 3.0 (triple shift).
var MaxDailyManDay = decimal.NewFromInt(3)

type CreateEntryRequest struct {
	WorkDate   string  `json:"work_date"` // YYYY-MM-DD
	SiteID     string  `json:"site_id"`
	WorkerID   *string `json:"worker_id,omitempty"`
	WorkerName string  `json:"worker_name"`
	TeamName   *string `json:"team_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	ManDay     string  `json:"man_day"`
	UnitPrice  int64   `json:"unit_price"`
}

// Validate rejects malformed numeric input at ingestion. Entries that pass
// here are treated as well formed by the calculator downstream.
func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "is required"})
	}
	if validator.IsEmpty(r.WorkerName) {
		errs = append(errs, validator.ValidationError{Field: "worker_name", Message: "is required"})
	}

	manDay, err := decimal.NewFromString(r.ManDay)
	switch {
	case err != nil:
		errs = append(errs, validator.ValidationError{Field: "man_day", Message: "must be a decimal number"})
	case manDay.IsNegative():
		errs = append(errs, validator.ValidationError{Field: "man_day", Message: "must be non-negative"})
	case manDay.GreaterThan(MaxDailyManDay):
		errs = append(errs, validator.ValidationError{Field: "man_day", Message: "exceeds daily maximum"})
	}

	if r.UnitPrice < 0 {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkCreateRequest struct {
	Entries []CreateEntryRequest `json:"entries"`
}

func (r *BulkCreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
		return errs
	}

	for i, e := range r.Entries {
		if err := e.Validate(); err != nil {
			var entryErrs validator.ValidationErrors
			if errors.As(err, &entryErrs) {
				for _, ee := range entryErrs {
					errs = append(errs, validator.ValidationError{
						Field:   "entries[" + validator.Itoa(i) + "]." + ee.Field,
						Message: ee.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RangeQuery is the explicit query object the pipeline runs on. It carries no
// memory of prior queries; the caller restricts the range to one billing month
// when monthly payroll is required.
type RangeQuery struct {
	StartDate string  `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string  `json:"end_date"`   // YYYY-MM-DD, inclusive
	SiteID    *string `json:"site_id,omitempty"`
	WorkerID  *string `json:"worker_id,omitempty"`
}

func (q *RangeQuery) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(q.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(q.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID         string  `json:"id"`
	WorkDate   string  `json:"work_date"`
	SiteID     string  `json:"site_id"`
	SiteName   string  `json:"site_name"`
	WorkerID   *string `json:"worker_id,omitempty"`
	WorkerName string  `json:"worker_name"`
	TeamName   *string `json:"team_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	ManDay     string  `json:"man_day"`
	UnitPrice  int64   `json:"unit_price"`
	Amount     string  `json:"amount"`
}

// ListEntriesResponse distinguishes "no records for this period" from a
// failed or not-yet-issued query: HasData is explicit, never inferred from a
// nil slice by the caller.
type ListEntriesResponse struct {
	Data     []EntryResponse `json:"data"`
	HasData  bool            `json:"has_data"`
	Warnings []string        `json:"warnings,omitempty"`
}
