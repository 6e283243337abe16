// Package aggregate computes the comparison views over a trips.Store.
//
// Every view is a filter -> group -> reduce -> order pipeline run
// independently per snapshot, then concatenated in period order:
//   - hourly.go: trips per pickup hour
//   - weekly.go: trips per pickup weekday
//   - payments.go: trips per payment method
//   - zones.go: top pickup zones per period
//   - fares.go: average fare components per period
//   - filter.go: the quality predicates shared by all views
//
// Views never mutate the store and allocate fresh rows on every call, so an
// Engine may be used from any number of goroutines.
package aggregate
