package aggregate

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/theoremus-urban-solutions/taxi-compare/trips"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// FareComposition averages fare, tip and total per period over trips passing
// QualifiesFare. A trip missing any of the three amounts is left out of all
// three means so they share one denominator. A period without qualifying
// trips yields a row with nil means.
func FareComposition(st *trips.Store) []views.FareRow {
	snaps := st.Snapshots()
	rows := make([]views.FareRow, 0, len(snaps))
	for _, s := range snaps {
		var fare, tip, total stats.StreamStats
		n := 0
		scan(s, QualifiesFare, func(i int) {
			f, ok1 := s.FareAmount.At(i)
			t, ok2 := s.TipAmount.At(i)
			a, ok3 := s.TotalAmount.At(i)
			if !ok1 || !ok2 || !ok3 {
				return
			}
			fare.Add(f)
			tip.Add(t)
			total.Add(a)
			n++
		})
		row := views.FareRow{Period: s.Label}
		if n > 0 {
			row.MeanFare = ptr(fare.Mean())
			row.MeanTip = ptr(tip.Mean())
			row.MeanTotal = ptr(total.Mean())
		}
		rows = append(rows, row)
	}
	return rows
}

func ptr(v float64) *float64 { return &v }
