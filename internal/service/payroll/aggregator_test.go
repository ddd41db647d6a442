package payroll

import (
	"testing"
	"time"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(workerID, name string, day int, manDay string, unitPrice int64) attendance.Entry {
	md, _ := decimal.NewFromString(manDay)
	var id *string
	if workerID != "" {
		id = &workerID
	}
	return attendance.Entry{
		ID:         "entry-" + name,
		WorkDate:   time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC),
		SiteID:     "site-1",
		SiteName:   "A현장",
		WorkerID:   id,
		WorkerName: name,
		ManDay:     md,
		UnitPrice:  unitPrice,
	}
}

func TestAggregate_SameDayEntriesDedupDays(t *testing.T) {
	entries := []attendance.Entry{
		testEntry("w-1", "김철수", 5, "0.5", 150000),
		testEntry("w-1", "김철수", 5, "0.5", 150000),
	}

	aggs := Aggregate(entries)

	require.Len(t, aggs, 1)
	assert.Equal(t, []int{5}, aggs[0].Days.Days())
	assert.Len(t, aggs[0].Entries, 2)
	assert.False(t, aggs[0].NameFallback)
}

func TestAggregate_GroupsByWorkerID(t *testing.T) {
	// Same display name, different ids: two distinct workers.
	entries := []attendance.Entry{
		testEntry("w-1", "김철수", 1, "1.0", 150000),
		testEntry("w-2", "김철수", 2, "1.0", 150000),
	}

	aggs := Aggregate(entries)

	require.Len(t, aggs, 2)
	assert.NotEqual(t, aggs[0].WorkerKey, aggs[1].WorkerKey)
}

func TestAggregate_NameFallbackNormalizesWhitespaceAndCase(t *testing.T) {
	entries := []attendance.Entry{
		testEntry("", "Kim  Cheol-su", 1, "1.0", 150000),
		testEntry("", "kim cheol-su", 2, "1.0", 150000),
	}

	aggs := Aggregate(entries)

	require.Len(t, aggs, 1)
	assert.True(t, aggs[0].NameFallback)
	assert.Equal(t, []int{1, 2}, aggs[0].Days.Days())
}

func TestAggregate_IDAndNameNeverMerge(t *testing.T) {
	entries := []attendance.Entry{
		testEntry("w-1", "김철수", 1, "1.0", 150000),
		testEntry("", "김철수", 2, "1.0", 150000),
	}

	aggs := Aggregate(entries)

	assert.Len(t, aggs, 2)
}

func TestAggregate_SortedByName(t *testing.T) {
	entries := []attendance.Entry{
		testEntry("w-2", "이영희", 1, "1.0", 150000),
		testEntry("w-1", "김철수", 1, "1.0", 150000),
	}

	aggs := Aggregate(entries)

	require.Len(t, aggs, 2)
	assert.Equal(t, "김철수", aggs[0].Name)
	assert.Equal(t, "이영희", aggs[1].Name)
}

func TestAggregate_EmptyInput(t *testing.T) {
	aggs := Aggregate(nil)
	assert.Empty(t, aggs)
}

func TestAggregate_KeepsFirstTeamName(t *testing.T) {
	team := "철근팀"
	first := testEntry("w-1", "김철수", 1, "1.0", 150000)
	second := testEntry("w-1", "김철수", 2, "1.0", 150000)
	second.TeamName = &team

	aggs := Aggregate([]attendance.Entry{first, second})

	require.Len(t, aggs, 1)
	require.NotNil(t, aggs[0].TeamName)
	assert.Equal(t, "철근팀", *aggs[0].TeamName)
}
