package aggregate

import (
	"sort"

	"github.com/theoremus-urban-solutions/taxi-compare/trips"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// TopZonesLimit is the number of zones kept per period
const TopZonesLimit = 5

// TopZones ranks pickup zones by qualifying trips, independently per period.
// Trips are joined to the zone table on PULocationID; unmatched zones and
// zones in the Unknown (or a blank) borough are dropped. Zones sharing a
// name are counted together. Ties are broken by zone name ascending. A period
// yields fewer than TopZonesLimit rows when fewer zones qualify, and none
// when it has no qualifying trip in a known zone.
func TopZones(st *trips.Store) []views.ZoneRow {
	rows := make([]views.ZoneRow, 0, TopZonesLimit*2)
	for _, s := range st.Snapshots() {
		counts := countBy(s, Qualifies, func(s *trips.Snapshot, i int) (string, bool) {
			id, ok := s.PULocationID.At(i)
			if !ok {
				return "", false
			}
			z, ok := st.Zone(id)
			if !ok || z.Unknown() {
				return "", false
			}
			return z.Name, true
		})
		rows = append(rows, topN(s.Label, counts, TopZonesLimit)...)
	}
	return rows
}

func topN(period string, counts map[string]int64, n int) []views.ZoneRow {
	ranked := make([]views.ZoneRow, 0, len(counts))
	for name, c := range counts {
		ranked = append(ranked, views.ZoneRow{Period: period, ZoneName: name, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ZoneName < ranked[j].ZoneName
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
