package aggregate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/taxi-compare/aggregate"
	fx "github.com/theoremus-urban-solutions/taxi-compare/internal/testfixtures"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

func engineFixture(t *testing.T) *aggregate.Engine {
	t.Helper()
	st := fx.Store(t,
		fx.Rows(
			fx.Ride("2019-02-01 05:10:00", 132, 52, 10, 68.3, 17.2, 1),
			fx.Ride("2019-02-03 18:00:00", 161, 7.5, 0, 8.8, 1.1, 2),
			fx.Ride("2019-02-03 18:30:00", 236, 9, 2, 12.3, 1.9, 1),
		),
		fx.Rows(
			fx.Ride("2023-02-05 08:00:00", 237, 12.1, 3, 19.6, 2.2, 1),
			fx.Ride("2023-02-05 08:15:00", 264, 6, 0, 9.5, 0.7, 4),
		),
	)
	return aggregate.NewEngine(st)
}

// TestEngine_ViewsAreIdempotent tests that repeated queries give byte-identical JSON
func TestEngine_ViewsAreIdempotent(t *testing.T) {
	e := engineFixture(t)
	for _, name := range views.All {
		first, err := e.View(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		second, err := e.View(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs:\n%s\n%s", name, a, b)
		}
	}
	t.Logf("✓ %d views stable across runs", len(views.All))
}

// TestEngine_Summary tests that the combined result matches the single views
func TestEngine_Summary(t *testing.T) {
	e := engineFixture(t)
	sum, err := e.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	hourly, _ := e.Hourly()
	fares, _ := e.Fares()
	zones, _ := e.TopZones()
	if len(sum.Hourly) != len(hourly) || len(sum.Weekly) != 14 || len(sum.Payments) != 6 {
		t.Errorf("Unexpected summary sizes: hourly=%d weekly=%d payments=%d", len(sum.Hourly), len(sum.Weekly), len(sum.Payments))
	}
	a, _ := json.Marshal(sum.Fares)
	b, _ := json.Marshal(fares)
	if !bytes.Equal(a, b) {
		t.Errorf("Summary fares %s, want %s", a, b)
	}
	if len(sum.TopZones) != len(zones) {
		t.Errorf("Summary top zones %d, want %d", len(sum.TopZones), len(zones))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Summary(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// TestEngine_Errors tests query failures
func TestEngine_Errors(t *testing.T) {
	var qe *aggregate.QueryError

	_, err := engineFixture(t).View(views.Name("heatmap"))
	if !errors.As(err, &qe) || !errors.Is(err, views.ErrUnknownView) {
		t.Errorf("Expected QueryError wrapping ErrUnknownView, got %v", err)
	}

	empty := aggregate.NewEngine(nil)
	_, err = empty.Hourly()
	if !errors.As(err, &qe) || !errors.Is(err, aggregate.ErrNoStore) || qe.View != views.Hourly {
		t.Errorf("Expected QueryError{hourly, ErrNoStore}, got %v", err)
	}
	if _, err := empty.Summary(context.Background()); !errors.Is(err, aggregate.ErrNoStore) {
		t.Errorf("Summary without store should fail, got %v", err)
	}
}
