package aggregate

import "github.com/theoremus-urban-solutions/taxi-compare/trips"

// Predicate decides whether record i of a snapshot takes part in a view
type Predicate func(s *trips.Snapshot, i int) bool

// Qualifies is the quality filter: total_amount > 0 and trip_distance > 0.
// Null values fail.
func Qualifies(s *trips.Snapshot, i int) bool {
	total, ok := s.TotalAmount.At(i)
	if !ok || total <= 0 {
		return false
	}
	dist, ok := s.TripDistance.At(i)
	return ok && dist > 0
}

// QualifiesFare additionally requires fare_amount > 0
func QualifiesFare(s *trips.Snapshot, i int) bool {
	if !Qualifies(s, i) {
		return false
	}
	fare, ok := s.FareAmount.At(i)
	return ok && fare > 0
}

// scan calls fn for every record of s accepted by keep
func scan(s *trips.Snapshot, keep Predicate, fn func(i int)) {
	for i, n := 0, s.Len(); i < n; i++ {
		if keep(s, i) {
			fn(i)
		}
	}
}

// countBy groups the accepted records of s by key and counts them.
// Records for which key reports false are skipped.
func countBy[K comparable](s *trips.Snapshot, keep Predicate, key func(s *trips.Snapshot, i int) (K, bool)) map[K]int64 {
	out := map[K]int64{}
	scan(s, keep, func(i int) {
		if k, ok := key(s, i); ok {
			out[k]++
		}
	})
	return out
}
