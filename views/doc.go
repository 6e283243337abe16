// Package views defines the row types returned by the five comparison views.
//
// These types are the contract with the rendering layer: field names, field
// order and numeric kinds are fixed. Counts are int64, averages are float64
// and never rounded here.
package views
