package aggregate

import (
	"github.com/theoremus-urban-solutions/taxi-compare/trips"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

const hoursPerDay = 24

func pickupHour(s *trips.Snapshot, i int) (int, bool) {
	t, ok := s.PickupTime.At(i)
	if !ok {
		return 0, false
	}
	return t.Hour(), true
}

// HourlyDemand counts qualifying trips per pickup hour. All 24 hours are
// emitted for every period, ordered by hour and then period.
func HourlyDemand(st *trips.Store) []views.HourlyRow {
	snaps := st.Snapshots()
	counts := make([]map[int]int64, len(snaps))
	for si, s := range snaps {
		counts[si] = countBy(s, Qualifies, pickupHour)
	}
	rows := make([]views.HourlyRow, 0, hoursPerDay*len(snaps))
	for h := 0; h < hoursPerDay; h++ {
		for si, s := range snaps {
			rows = append(rows, views.HourlyRow{Period: s.Label, Hour: h, Count: counts[si][h]})
		}
	}
	return rows
}
