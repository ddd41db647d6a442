package invoice

import (
	"fmt"
	"sort"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/invoice"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/shopspring/decimal"
)

// Marker value placed in a day cell when the worker was present that day.
// Fixed by the legacy spreadsheet template.
var dayMarker = decimal.NewFromInt(1)

const (
	gridArtifactType      = "노무대장"
	statementArtifactType = "임금명세서"
	firstHalfDays         = 15 // days 1-15 on the first row, 16-31 on the second
)

// ArtifactName builds the output file name for a statement artifact:
// "<statement-type>_<siteOrWorkerName>_<YYYY-MM>.xlsx".
func ArtifactName(statementType, name, period string) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", statementType, name, period)
}

// AssembleGrid arranges payroll records into the site-wide day-by-day grid.
// Totals columns come verbatim from each record; the trailing aggregate row
// sums every numeric column across all workers. Pure.
func AssembleGrid(siteID, siteName, period string, records []payroll.RecordResponse, workers map[string]registry.Worker) invoice.SiteGridResponse {
	grid := invoice.SiteGridResponse{
		SiteID:       siteID,
		SiteName:     siteName,
		Period:       period,
		Rows:         []invoice.GridWorkerRow{},
		ArtifactName: ArtifactName(gridArtifactType, siteName, period),
		HasData:      len(records) > 0,
	}

	totals := invoice.GridTotals{
		Gongsu:          decimal.Zero,
		UnitPrice:       decimal.Zero,
		GrossPay:        decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPay:          decimal.Zero,
	}
	teams := make(map[string]*invoice.TeamSummary)
	var teamOrder []string

	for _, r := range records {
		row := invoice.GridWorkerRow{
			WorkerID:        r.WorkerID,
			WorkerName:      r.WorkerName,
			TeamName:        r.TeamName,
			DayMarkers:      r.Days,
			Gongsu:          r.Gongsu,
			UnitPrice:       decimal.NewFromInt(r.UnitPrice),
			GrossPay:        r.GrossPay,
			TotalDeductions: r.Deductions.Total,
			NetPay:          r.NetPay,
			Warnings:        r.Warnings,
		}
		if r.WorkerID != nil {
			if w, ok := workers[*r.WorkerID]; ok {
				row.Phone = w.Phone
				row.Address = w.Address
			}
		}
		grid.Rows = append(grid.Rows, row)

		totals.Gongsu = totals.Gongsu.Add(row.Gongsu)
		totals.UnitPrice = totals.UnitPrice.Add(row.UnitPrice)
		totals.GrossPay = totals.GrossPay.Add(row.GrossPay)
		totals.TotalDeductions = totals.TotalDeductions.Add(row.TotalDeductions)
		totals.NetPay = totals.NetPay.Add(row.NetPay)

		teamName := "(무소속)"
		if r.TeamName != nil && *r.TeamName != "" {
			teamName = *r.TeamName
		}
		team, ok := teams[teamName]
		if !ok {
			team = &invoice.TeamSummary{TeamName: teamName, Gongsu: decimal.Zero, GrossPay: decimal.Zero}
			teams[teamName] = team
			teamOrder = append(teamOrder, teamName)
		}
		team.Workers++
		team.Gongsu = team.Gongsu.Add(row.Gongsu)
		team.GrossPay = team.GrossPay.Add(row.GrossPay)

		for _, w := range r.Warnings {
			grid.Warnings = appendWarning(grid.Warnings, w)
		}
	}

	grid.Totals = totals
	for _, name := range teamOrder {
		grid.TeamSummary = append(grid.TeamSummary, *teams[name])
	}
	grid.Table = gridTable(grid)

	return grid
}

// gridTable lays the grid out in the fixed spreadsheet template: column A
// name, B id/phone, C address, a 16-column day block (1-15 on the first row,
// 16-31 on the continuation row), then totals, unit price, gross, deductions,
// net. The layout is a presentation contract; downstream spreadsheets depend
// on it cell for cell.
func gridTable(grid invoice.SiteGridResponse) [][]invoice.Cell {
	table := [][]invoice.Cell{headerRow()}

	for _, row := range grid.Rows {
		present := make(map[int]bool, len(row.DayMarkers))
		for _, d := range row.DayMarkers {
			present[d] = true
		}

		idCell := invoice.BlankCell()
		if row.Phone != nil {
			idCell = invoice.TextCell(*row.Phone)
		} else if row.WorkerID != nil {
			idCell = invoice.TextCell(*row.WorkerID)
		}
		addressCell := invoice.BlankCell()
		if row.Address != nil {
			addressCell = invoice.TextCell(*row.Address)
		}

		first := []invoice.Cell{invoice.TextCell(row.WorkerName), idCell, addressCell}
		for day := 1; day <= firstHalfDays; day++ {
			first = append(first, markerCell(present[day]))
		}
		first = append(first, invoice.BlankCell()) // pads the 16-column day block
		first = append(first,
			invoice.NumberCell(row.Gongsu),
			invoice.NumberCell(row.UnitPrice),
			invoice.NumberCell(row.GrossPay),
			invoice.NumberCell(row.TotalDeductions),
			invoice.NumberCell(row.NetPay),
		)
		table = append(table, first)

		second := []invoice.Cell{invoice.BlankCell(), invoice.BlankCell(), invoice.BlankCell()}
		for day := firstHalfDays + 1; day <= 31; day++ {
			second = append(second, markerCell(present[day]))
		}
		second = append(second,
			invoice.BlankCell(), invoice.BlankCell(), invoice.BlankCell(),
			invoice.BlankCell(), invoice.BlankCell(),
		)
		table = append(table, second)
	}

	aggregate := []invoice.Cell{invoice.TextCell("합계"), invoice.BlankCell(), invoice.BlankCell()}
	for i := 0; i < 16; i++ {
		aggregate = append(aggregate, invoice.BlankCell())
	}
	aggregate = append(aggregate,
		invoice.NumberCell(grid.Totals.Gongsu),
		invoice.NumberCell(grid.Totals.UnitPrice),
		invoice.NumberCell(grid.Totals.GrossPay),
		invoice.NumberCell(grid.Totals.TotalDeductions),
		invoice.NumberCell(grid.Totals.NetPay),
	)
	table = append(table, aggregate)

	return table
}

func headerRow() []invoice.Cell {
	header := []invoice.Cell{
		invoice.TextCell("성명"),
		invoice.TextCell("연락처"),
		invoice.TextCell("주소"),
	}
	for day := 1; day <= firstHalfDays; day++ {
		header = append(header, invoice.TextCell(fmt.Sprintf("%d", day)))
	}
	header = append(header, invoice.BlankCell())
	header = append(header,
		invoice.TextCell("공수"),
		invoice.TextCell("단가"),
		invoice.TextCell("노무비"),
		invoice.TextCell("공제액"),
		invoice.TextCell("실지급액"),
	)
	return header
}

func markerCell(present bool) invoice.Cell {
	if present {
		return invoice.NumberCell(dayMarker)
	}
	return invoice.BlankCell()
}

// AssembleStatement arranges one payroll record into the single-worker
// itemized statement. The total-deductions line restates net pay as gross
// minus total; both expressions always agree because both read the same
// record. Pure.
func AssembleStatement(workerID, workerName, period string, siteID *string, record payroll.RecordResponse) invoice.WorkerStatementResponse {
	statement := invoice.WorkerStatementResponse{
		WorkerID:        workerID,
		WorkerName:      workerName,
		Period:          period,
		SiteID:          siteID,
		Gongsu:          record.Gongsu,
		UnitPrice:       decimal.NewFromInt(record.UnitPrice),
		GrossPay:        record.GrossPay,
		TotalDeductions: record.Deductions.Total,
		NetPay:          record.NetPay,
		Days:            record.Days,
		ArtifactName:    ArtifactName(statementArtifactType, workerName, period),
		HasData:         len(record.Days) > 0 || record.Gongsu.IsPositive(),
		Warnings:        record.Warnings,
	}

	statement.Deductions = append(statement.Deductions, invoice.StatementLine{
		Label: "소득세",
		Cell:  invoice.NumberCell(record.Deductions.IncomeTax),
	})
	for _, name := range sortedItemNames(record.Deductions.Items) {
		statement.Deductions = append(statement.Deductions, invoice.StatementLine{
			Label: name,
			Cell:  invoice.NumberCell(record.Deductions.Items[name]),
		})
	}

	statement.Lines = []invoice.StatementLine{
		{Label: "성명", Cell: invoice.TextCell(workerName)},
		{Label: "공수", Cell: invoice.NumberCell(statement.Gongsu)},
		{Label: "평균단가", Cell: invoice.NumberCell(statement.UnitPrice)},
		{Label: "노무비", Cell: invoice.NumberCell(statement.GrossPay)},
	}
	statement.Lines = append(statement.Lines, statement.Deductions...)
	statement.Lines = append(statement.Lines,
		invoice.StatementLine{Label: "총공제금", Cell: invoice.NumberCell(statement.TotalDeductions)},
		invoice.StatementLine{Label: "실지급액", Cell: invoice.NumberCell(statement.GrossPay.Sub(statement.TotalDeductions))},
	)

	return statement
}

func sortedItemNames(items map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func appendWarning(warnings []string, warning string) []string {
	for _, w := range warnings {
		if w == warning {
			return warnings
		}
	}
	return append(warnings, warning)
}
