package aggregate

import (
	"github.com/theoremus-urban-solutions/taxi-compare/trips"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

const daysPerWeek = 7

func pickupWeekday(s *trips.Snapshot, i int) (int, bool) {
	t, ok := s.PickupTime.At(i)
	if !ok {
		return 0, false
	}
	return int(t.Weekday()), true
}

// WeeklyDemand counts qualifying trips per pickup weekday (0 = Sunday).
// All 7 days are emitted for every period, ordered by day and then period.
func WeeklyDemand(st *trips.Store) []views.WeeklyRow {
	snaps := st.Snapshots()
	counts := make([]map[int]int64, len(snaps))
	for si, s := range snaps {
		counts[si] = countBy(s, Qualifies, pickupWeekday)
	}
	rows := make([]views.WeeklyRow, 0, daysPerWeek*len(snaps))
	for d := 0; d < daysPerWeek; d++ {
		for si, s := range snaps {
			rows = append(rows, views.WeeklyRow{Period: s.Label, DayOfWeek: d, Count: counts[si][d]})
		}
	}
	return rows
}
