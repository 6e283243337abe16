package views

import (
	"errors"
	"fmt"
)

// ErrUnknownView is returned by ParseName for names outside All
var ErrUnknownView = errors.New("unknown view")

// Name identifies one of the fixed views
type Name string

const (
	Hourly   Name = "hourly"
	Weekly   Name = "weekly"
	Payments Name = "payments"
	TopZones Name = "top_zones"
	Fares    Name = "fares"
)

// All lists the views in their canonical order
var All = []Name{Hourly, Weekly, Payments, TopZones, Fares}

// ParseName validates a view name
func ParseName(s string) (Name, error) {
	for _, n := range All {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownView, s)
}

// HourlyRow counts qualifying trips by pickup hour
type HourlyRow struct {
	Period string `json:"period"`
	Hour   int    `json:"hour"`
	Count  int64  `json:"count"`
}

// WeeklyRow counts qualifying trips by pickup weekday, 0 = Sunday
type WeeklyRow struct {
	Period    string `json:"period"`
	DayOfWeek int    `json:"day_of_week"`
	Count     int64  `json:"count"`
}

// PaymentRow counts qualifying trips by payment method
type PaymentRow struct {
	Period string `json:"period"`
	Method Method `json:"method"`
	Count  int64  `json:"count"`
}

// ZoneRow counts qualifying trips by pickup zone name
type ZoneRow struct {
	Period   string `json:"period"`
	ZoneName string `json:"zone_name"`
	Count    int64  `json:"count"`
}

// FareRow holds the average fare components of a period.
// A nil mean means the period had no qualifying trips.
type FareRow struct {
	Period    string   `json:"period"`
	MeanFare  *float64 `json:"mean_fare"`
	MeanTip   *float64 `json:"mean_tip"`
	MeanTotal *float64 `json:"mean_total"`
}

// Summary bundles every view
type Summary struct {
	Hourly   []HourlyRow  `json:"hourly"`
	Weekly   []WeeklyRow  `json:"weekly"`
	Payments []PaymentRow `json:"payments"`
	TopZones []ZoneRow    `json:"top_zones"`
	Fares    []FareRow    `json:"fares"`
}
