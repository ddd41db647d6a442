package payroll

import (
	"testing"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aggregateOne(t *testing.T, entries []attendance.Entry) payroll.WorkerAggregate {
	t.Helper()
	aggs := Aggregate(entries)
	require.Len(t, aggs, 1)
	return aggs[0]
}

func TestCalculate_HalfDayPairSameDay(t *testing.T) {
	agg := aggregateOne(t, []attendance.Entry{
		testEntry("w-1", "김철수", 5, "0.5", 150000),
		testEntry("w-1", "김철수", 5, "0.5", 150000),
	})

	record := Calculate(agg)

	assert.Equal(t, "1", record.Gongsu.String())
	assert.Equal(t, "150000", record.GrossPay.String())
	assert.Equal(t, []int{5}, record.Days.Days())
}

func TestCalculate_TenFullDays(t *testing.T) {
	var entries []attendance.Entry
	for day := 1; day <= 10; day++ {
		entries = append(entries, testEntry("w-1", "김철수", day, "1.0", 160000))
	}

	record := Calculate(aggregateOne(t, entries))

	assert.Equal(t, "10", record.Gongsu.String())
	assert.Equal(t, "1600000", record.GrossPay.String())
	assert.Equal(t, int64(160000), record.UnitPrice)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, record.Days.Days())
}

func TestCalculate_MixedUnitPricesAcrossSites(t *testing.T) {
	// Gross pay sums per-entry amounts. The average unit price is derived
	// afterward and rounds to the nearest won.
	first := testEntry("w-1", "김철수", 1, "1.0", 100000)
	second := testEntry("w-1", "김철수", 2, "0.5", 150000)
	second.SiteID = "site-2"
	second.SiteName = "B현장"

	record := Calculate(aggregateOne(t, []attendance.Entry{first, second}))

	assert.Equal(t, "1.5", record.Gongsu.String())
	assert.Equal(t, "175000", record.GrossPay.String())
	assert.Equal(t, int64(116667), record.UnitPrice)
}

func TestCalculate_ZeroGongsuZeroUnitPrice(t *testing.T) {
	record := Calculate(aggregateOne(t, []attendance.Entry{
		testEntry("w-1", "김철수", 1, "0", 150000),
	}))

	assert.True(t, record.Gongsu.IsZero())
	assert.True(t, record.GrossPay.IsZero())
	assert.Equal(t, int64(0), record.UnitPrice)
}

func TestCalculate_NameFallbackWarning(t *testing.T) {
	record := Calculate(aggregateOne(t, []attendance.Entry{
		testEntry("", "김철수", 1, "1.0", 150000),
	}))

	assert.Contains(t, record.Warnings, payroll.WarnNameFallback)
}

func TestCalculate_DeductionsStayUnresolved(t *testing.T) {
	record := Calculate(aggregateOne(t, []attendance.Entry{
		testEntry("w-1", "김철수", 1, "1.0", 150000),
	}))

	assert.Nil(t, record.Deductions)
}
