package invoice

import (
	"testing"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/invoice"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(workerID, name string, days []int, gongsu string, unitPrice int64, gross, tax, net string) payroll.RecordResponse {
	g, _ := decimal.NewFromString(gongsu)
	gr, _ := decimal.NewFromString(gross)
	tx, _ := decimal.NewFromString(tax)
	n, _ := decimal.NewFromString(net)
	var id *string
	if workerID != "" {
		id = &workerID
	}
	return payroll.RecordResponse{
		WorkerID:   id,
		WorkerName: name,
		Gongsu:     g,
		UnitPrice:  unitPrice,
		GrossPay:   gr,
		Deductions: payroll.DeductionsResponse{IncomeTax: tx, Total: tx},
		NetPay:     n,
		Days:       days,
	}
}

func TestAssembleGrid_SumInvariant(t *testing.T) {
	records := []payroll.RecordResponse{
		testRecord("w-1", "김철수", []int{1, 2}, "2", 160000, "320000", "10560", "309440"),
		testRecord("w-2", "이영희", []int{3}, "1", 150000, "150000", "4950", "145050"),
	}

	grid := AssembleGrid("site-1", "A현장", "2025-07", records, nil)

	require.Len(t, grid.Rows, 2)
	assert.Equal(t, "3", grid.Totals.Gongsu.String())
	assert.Equal(t, "470000", grid.Totals.GrossPay.String())
	assert.Equal(t, "15510", grid.Totals.TotalDeductions.String())
	assert.Equal(t, "454490", grid.Totals.NetPay.String())
	assert.True(t, grid.HasData)
}

func TestAssembleGrid_TotalsComeFromRecordsVerbatim(t *testing.T) {
	// One worker row: its totals columns must restate the record untouched,
	// never be recomputed from the day markers.
	record := testRecord("w-1", "김철수", []int{5}, "1", 150000, "150000", "4950", "145050")

	grid := AssembleGrid("site-1", "A현장", "2025-07", []payroll.RecordResponse{record}, nil)

	row := grid.Rows[0]
	assert.True(t, row.Gongsu.Equal(record.Gongsu))
	assert.True(t, row.GrossPay.Equal(record.GrossPay))
	assert.True(t, row.TotalDeductions.Equal(record.Deductions.Total))
	assert.True(t, row.NetPay.Equal(record.NetPay))
}

func TestAssembleGrid_MarkerPlacement(t *testing.T) {
	record := testRecord("w-1", "김철수", []int{1, 16, 31}, "3", 150000, "450000", "14850", "435150")

	grid := AssembleGrid("site-1", "A현장", "2025-07", []payroll.RecordResponse{record}, nil)

	// Row 0 is the header; each worker contributes a 1-15 row then a 16-31
	// row. Day columns start after name, id, address.
	first := grid.Table[1]
	second := grid.Table[2]

	assert.Equal(t, invoice.CellNumber, first[3].Type) // day 1
	assert.Equal(t, "1", first[3].Number.String())
	assert.Equal(t, invoice.CellBlank, first[4].Type) // day 2

	assert.Equal(t, invoice.CellNumber, second[3].Type)  // day 16
	assert.Equal(t, invoice.CellNumber, second[18].Type) // day 31
	assert.Equal(t, invoice.CellBlank, second[17].Type)  // day 30
}

func TestAssembleGrid_AggregateRowIsLast(t *testing.T) {
	records := []payroll.RecordResponse{
		testRecord("w-1", "김철수", []int{1}, "1", 150000, "150000", "4950", "145050"),
	}

	grid := AssembleGrid("site-1", "A현장", "2025-07", records, nil)

	last := grid.Table[len(grid.Table)-1]
	assert.Equal(t, "합계", last[0].Text)
	assert.Equal(t, "150000", last[len(last)-3].Number.String()) // gross column
}

func TestAssembleGrid_WorkerContactDecoration(t *testing.T) {
	phone := "010-1234-5678"
	address := "서울시 강남구"
	workers := map[string]registry.Worker{
		"w-1": {ID: "w-1", Name: "김철수", Phone: &phone, Address: &address},
	}
	records := []payroll.RecordResponse{
		testRecord("w-1", "김철수", []int{1}, "1", 150000, "150000", "4950", "145050"),
	}

	grid := AssembleGrid("site-1", "A현장", "2025-07", records, workers)

	require.NotNil(t, grid.Rows[0].Phone)
	assert.Equal(t, phone, *grid.Rows[0].Phone)
	assert.Equal(t, address, *grid.Rows[0].Address)
}

func TestAssembleGrid_EmptyPeriod(t *testing.T) {
	grid := AssembleGrid("site-1", "A현장", "2025-07", nil, nil)

	assert.False(t, grid.HasData)
	assert.Empty(t, grid.Rows)
	assert.True(t, grid.Totals.GrossPay.IsZero())
}

func TestAssembleGrid_TeamSummaryRollup(t *testing.T) {
	team := "철근팀"
	first := testRecord("w-1", "김철수", []int{1}, "1", 150000, "150000", "4950", "145050")
	first.TeamName = &team
	second := testRecord("w-2", "이영희", []int{2}, "1", 150000, "150000", "4950", "145050")
	second.TeamName = &team

	grid := AssembleGrid("site-1", "A현장", "2025-07", []payroll.RecordResponse{first, second}, nil)

	require.Len(t, grid.TeamSummary, 1)
	assert.Equal(t, "철근팀", grid.TeamSummary[0].TeamName)
	assert.Equal(t, 2, grid.TeamSummary[0].Workers)
	assert.Equal(t, "300000", grid.TeamSummary[0].GrossPay.String())
}

func TestAssembleStatement_NetRestatement(t *testing.T) {
	record := testRecord("w-1", "김철수", []int{1, 2, 3}, "3", 160000, "480000", "15840", "464160")
	record.Deductions.Items = map[string]decimal.Decimal{"가불": decimal.NewFromInt(100000)}
	record.Deductions.Total = record.Deductions.IncomeTax.Add(decimal.NewFromInt(100000))
	record.NetPay = record.GrossPay.Sub(record.Deductions.Total)

	statement := AssembleStatement("w-1", "김철수", "2025-07", nil, record)

	// The final line restates net pay as gross minus total deductions; both
	// expressions must agree.
	last := statement.Lines[len(statement.Lines)-1]
	assert.Equal(t, "실지급액", last.Label)
	assert.True(t, last.Cell.Number.Equal(statement.NetPay))
	assert.True(t, statement.HasData)
}

func TestAssembleStatement_ZeroMonth(t *testing.T) {
	record := payroll.RecordResponse{WorkerName: "김철수", Days: []int{}}

	statement := AssembleStatement("w-1", "김철수", "2025-07", nil, record)

	assert.False(t, statement.HasData)
	assert.True(t, statement.GrossPay.IsZero())
	assert.True(t, statement.NetPay.IsZero())
}

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "노무대장_A현장_2025-07.xlsx", ArtifactName("노무대장", "A현장", "2025-07"))
	assert.Equal(t, "임금명세서_김철수_2025-07.xlsx", ArtifactName("임금명세서", "김철수", "2025-07"))
}
