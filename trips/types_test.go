package trips_test

import (
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/taxi-compare/internal/testfixtures"
	"github.com/theoremus-urban-solutions/taxi-compare/trips"
)

func TestNewStore(t *testing.T) {
	one := testfixtures.Rows(testfixtures.Ride("2019-02-01 00:00:00", 1, 1, 0, 1, 1, 1))
	zones := testfixtures.Zones()

	tests := []struct {
		name      string
		snapshots []*trips.Snapshot
		zones     []trips.Zone
		target    error
	}{
		{"one snapshot", []*trips.Snapshot{testfixtures.Snapshot("a", one...)}, zones, nil},
		{"three snapshots", []*trips.Snapshot{
			testfixtures.Snapshot("a", one...), testfixtures.Snapshot("b", one...), testfixtures.Snapshot("c", one...),
		}, zones, nil},
		{"duplicate labels", []*trips.Snapshot{testfixtures.Snapshot("a", one...), testfixtures.Snapshot("a", one...)}, zones, nil},
		{"empty label", []*trips.Snapshot{testfixtures.Snapshot("", one...), testfixtures.Snapshot("a", one...)}, zones, nil},
		{"empty snapshot", []*trips.Snapshot{testfixtures.Snapshot("a"), testfixtures.Snapshot("b", one...)}, zones, trips.ErrEmptySource},
		{"no zones", []*trips.Snapshot{testfixtures.Snapshot("a", one...), testfixtures.Snapshot("b", one...)}, nil, trips.ErrEmptySource},
		{"nil snapshot", []*trips.Snapshot{nil, testfixtures.Snapshot("b", one...)}, zones, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trips.NewStore(tt.snapshots, tt.zones)
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestStore_Lookups(t *testing.T) {
	st := testfixtures.Store(t,
		testfixtures.Rows(testfixtures.Ride("2019-02-01 00:00:00", 132, 10, 1, 12, 2, 1)),
		testfixtures.Rows(
			testfixtures.Ride("2023-02-01 00:00:00", 161, 10, 1, 12, 2, 1),
			testfixtures.Ride("2023-02-01 01:00:00", 161, 10, 1, 12, 2, 2),
		),
	)

	if _, ok := st.Snapshot("2020"); ok {
		t.Error("Unexpected snapshot 2020")
	}
	if _, ok := st.Zone(999); ok {
		t.Error("Unexpected zone 999")
	}
	z, ok := st.Zone(264)
	if !ok || !z.Unknown() {
		t.Errorf("Zone 264 should be in the Unknown borough, got %+v", z)
	}
	if st.ZoneCount() != len(testfixtures.Zones()) {
		t.Errorf("ZoneCount = %d", st.ZoneCount())
	}

	snaps := st.Snapshots()
	snaps[0] = nil
	if st.Snapshots()[0] == nil {
		t.Error("Snapshots must return a copy")
	}
}

func TestZone_Unknown(t *testing.T) {
	tests := []struct {
		borough string
		want    bool
	}{
		{"Unknown", true},
		{" unknown ", true},
		{"", true},
		{"   ", true},
		{"Manhattan", false},
		{"EWR", false},
	}
	for _, tt := range tests {
		z := trips.Zone{LocationID: 1, Borough: tt.borough, Name: "Zone"}
		if got := z.Unknown(); got != tt.want {
			t.Errorf("Zone{Borough: %q}.Unknown() = %v, want %v", tt.borough, got, tt.want)
		}
	}
	t.Logf("✓ %d boroughs classified", len(tests))
}

func TestBuilder_AppendMissing(t *testing.T) {
	snap := trips.NewBuilder("2019").
		AppendMissing(testfixtures.Ride("2019-02-01 00:00:00", 1, 5, 1, 7, 1, 1), trips.FieldTipAmount, trips.FieldPaymentType).
		Append(testfixtures.Ride("2019-02-01 00:00:00", 1, 5, 1, 7, 1, 1)).
		Build()

	if snap.Len() != 2 {
		t.Fatalf("Expected 2 trips, got %d", snap.Len())
	}
	if _, ok := snap.TipAmount.At(0); ok {
		t.Error("Tip of first trip should be null")
	}
	if _, ok := snap.PaymentType.At(0); ok {
		t.Error("Payment type of first trip should be null")
	}
	if fare, ok := snap.FareAmount.At(0); !ok || fare != 5 {
		t.Errorf("Fare of first trip should be 5, got %v (valid=%v)", fare, ok)
	}
	if _, ok := snap.TipAmount.At(1); !ok {
		t.Error("Tip of second trip should be valid")
	}
}

func TestFieldColumnName(t *testing.T) {
	if got := trips.FieldPULocationID.ColumnName(); got != "PULocationID" {
		t.Errorf("ColumnName = %q", got)
	}
	if got := trips.Field(-1).ColumnName(); got != "" {
		t.Errorf("Out of range field should have no column, got %q", got)
	}
}
