package payroll

import (
	"sort"
	"strings"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
)

// Aggregate groups already-fetched entries by worker, building each worker's
// deduplicated day presence set and the list of contributing entries. Entries
// sharing a day contribute their amounts but not duplicate day membership.
//
// Pure: no I/O, no state across calls. Filtering by site/worker happens at
// fetch time, never here.
func Aggregate(entries []attendance.Entry) []payroll.WorkerAggregate {
	byKey := make(map[string]*payroll.WorkerAggregate)
	var order []string

	for _, e := range entries {
		key, fallback := groupingKey(e)
		agg, ok := byKey[key]
		if !ok {
			agg = &payroll.WorkerAggregate{
				WorkerKey:    key,
				WorkerID:     e.WorkerID,
				Name:         e.WorkerName,
				TeamName:     e.TeamName,
				NameFallback: fallback,
				Days:         make(payroll.DayPresenceSet),
			}
			byKey[key] = agg
			order = append(order, key)
		}
		agg.Days.Add(e.Day())
		agg.Entries = append(agg.Entries, e)
		if agg.TeamName == nil && e.TeamName != nil {
			agg.TeamName = e.TeamName
		}
	}

	result := make([]payroll.WorkerAggregate, 0, len(order))
	for _, key := range order {
		result = append(result, *byKey[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].WorkerKey < result[j].WorkerKey
	})

	return result
}

// groupingKey prefers the stable worker id. The name fallback is a deprecated
// compatibility path for legacy rows without one; callers surface it as a
// data-quality warning.
func groupingKey(e attendance.Entry) (key string, fallback bool) {
	if e.WorkerID != nil && *e.WorkerID != "" {
		return "id:" + *e.WorkerID, false
	}
	normalized := strings.ToLower(strings.Join(strings.Fields(e.WorkerName), " "))
	return "name:" + normalized, true
}
