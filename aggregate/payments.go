package aggregate

import (
	"github.com/theoremus-urban-solutions/taxi-compare/trips"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// PaymentMix counts qualifying trips per payment method. Each period gets
// exactly one row per method in Card, Cash, Other order, zero counts included.
func PaymentMix(st *trips.Store) []views.PaymentRow {
	snaps := st.Snapshots()
	rows := make([]views.PaymentRow, 0, len(views.Methods)*len(snaps))
	for _, s := range snaps {
		var counts [len(views.Methods)]int64
		scan(s, Qualifies, func(i int) {
			code, ok := s.PaymentType.At(i)
			counts[views.MethodForCode(code, ok).Index()]++
		})
		for mi, m := range views.Methods {
			rows = append(rows, views.PaymentRow{Period: s.Label, Method: m, Count: counts[mi]})
		}
	}
	return rows
}
