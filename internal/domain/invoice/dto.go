package invoice

import (
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CellType tags a tabular cell for the downstream spreadsheet/screen
// renderer. Blank cells are emitted explicitly; a renderer never sees an
// undefined cell.
type CellType string

const (
	CellText   CellType = "text"
	CellNumber CellType = "number"
	CellBlank  CellType = "blank"
)

type Cell struct {
	Type   CellType         `json:"type"`
	Text   string           `json:"text,omitempty"`
	Number *decimal.Decimal `json:"number,omitempty"`
}

func TextCell(s string) Cell { return Cell{Type: CellText, Text: s} }

func NumberCell(d decimal.Decimal) Cell { return Cell{Type: CellNumber, Number: &d} }

func BlankCell() Cell { return Cell{Type: CellBlank} }

// GridWorkerRow is one worker's pair of day rows plus the totals columns.
// Totals are taken verbatim from the payroll record, never recomputed from
// the day cells.
type GridWorkerRow struct {
	WorkerID        *string         `json:"worker_id,omitempty"`
	WorkerName      string          `json:"worker_name"`
	Phone           *string         `json:"phone,omitempty"`
	Address         *string         `json:"address,omitempty"`
	TeamName        *string         `json:"team_name,omitempty"`
	DayMarkers      []int           `json:"day_markers"` // present day numbers, sorted
	Gongsu          decimal.Decimal `json:"gongsu"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Warnings        []string        `json:"warnings,omitempty"`
}

// GridTotals is the trailing aggregate row: every numeric column summed
// across all worker rows.
type GridTotals struct {
	Gongsu          decimal.Decimal `json:"gongsu"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

// TeamSummary is a per-team rollup of the same worker rows.
type TeamSummary struct {
	TeamName string          `json:"team_name"`
	Workers  int             `json:"workers"`
	Gongsu   decimal.Decimal `json:"gongsu"`
	GrossPay decimal.Decimal `json:"gross_pay"`
}

// SiteGridResponse is the site-wide day-by-day grid for one billing month.
type SiteGridResponse struct {
	SiteID       string          `json:"site_id"`
	SiteName     string          `json:"site_name"`
	Period       string          `json:"period"` // YYYY-MM
	Rows         []GridWorkerRow `json:"rows"`
	Totals       GridTotals      `json:"totals"`
	TeamSummary  []TeamSummary   `json:"team_summary,omitempty"`
	Table        [][]Cell        `json:"table"` // fixed spreadsheet layout
	ArtifactName string          `json:"artifact_name"`
	HasData      bool            `json:"has_data"`
	Warnings     []string        `json:"warnings,omitempty"`
}

// StatementLine is one labeled row of a worker statement.
type StatementLine struct {
	Label string `json:"label"`
	Cell  Cell   `json:"cell"`
}

// WorkerStatementResponse is the single-worker itemized statement. The
// total-deductions line restates net pay as gross minus total; the two
// expressions always agree.
type WorkerStatementResponse struct {
	WorkerID        string          `json:"worker_id"`
	WorkerName      string          `json:"worker_name"`
	Period          string          `json:"period"`
	SiteID          *string         `json:"site_id,omitempty"`
	Gongsu          decimal.Decimal `json:"gongsu"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	Deductions      []StatementLine `json:"deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Days            []int           `json:"days"`
	Lines           []StatementLine `json:"lines"`
	ArtifactName    string          `json:"artifact_name"`
	HasData         bool            `json:"has_data"`
	Warnings        []string        `json:"warnings,omitempty"`
}

type SiteGridRequest struct {
	SiteID string `json:"site_id"`
	Month  string `json:"month"` // YYYY-MM
}

func (r *SiteGridRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "is required"})
	}
	if _, _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerStatementRequest struct {
	WorkerID string  `json:"worker_id"`
	Month    string  `json:"month"` // YYYY-MM
	SiteID   *string `json:"site_id,omitempty"`
}

func (r *WorkerStatementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if _, _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
