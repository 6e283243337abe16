package trips

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/taxi-compare/config"
)

// Loader reads snapshot and zone sources
type Loader struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// LoaderOption customises a Loader
type LoaderOption func(*Loader)

// WithHTTPClient sets the client used for remote sources
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.httpClient = c }
}

// WithLogger sets the logger for load progress
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a loader. Remote downloads have no timeout by default;
// cancel the context to abort them.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{httpClient: &http.Client{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewStoreFromConfig loads both snapshots and the zone table with a default loader
func NewStoreFromConfig(ctx context.Context, cfg config.DataConfig) (*Store, error) {
	return NewLoader().Load(ctx, cfg)
}

// Load reads the snapshots in configuration order, then the zones. Any failure
// discards everything read so far.
func (l *Loader) Load(ctx context.Context, cfg config.DataConfig) (*Store, error) {
	if len(cfg.Snapshots) != 2 {
		return nil, fmt.Errorf("expected 2 snapshots, got %d", len(cfg.Snapshots))
	}
	start := time.Now()
	snaps := make([]*Snapshot, 0, len(cfg.Snapshots))
	for _, sc := range cfg.Snapshots {
		snap, err := l.LoadSnapshot(ctx, sc.Label, sc.Path)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	zones, err := l.LoadZones(ctx, cfg.Zones)
	if err != nil {
		return nil, err
	}
	st, err := NewStore(snaps, zones)
	if err != nil {
		return nil, err
	}
	l.logger.Info("dataset loaded", "snapshots", st.Labels(), "zones", st.ZoneCount(), "elapsed", time.Since(start))
	return st, nil
}

// LoadSnapshot reads one trip source
func (l *Loader) LoadSnapshot(ctx context.Context, label, location string) (*Snapshot, error) {
	l.logger.Info("loading snapshot", "period", label, "source", location)
	format, err := sourceFormat(location)
	if err != nil {
		return nil, &LoadError{Source: location, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: location, Err: err}
	}
	r, err := openSource(ctx, l.httpClient, location)
	if err != nil {
		return nil, &LoadError{Source: location, Err: err}
	}
	defer func() { _ = r.Close() }()

	var snap *Snapshot
	switch format {
	case "parquet":
		snap, err = decodeParquet(ctx, label, r)
	default:
		snap, err = decodeTripsCSV(label, r)
	}
	if err != nil {
		return nil, &LoadError{Source: location, Err: err}
	}
	if snap.Len() == 0 {
		return nil, &LoadError{Source: location, Err: ErrEmptySource}
	}
	l.logger.Info("snapshot loaded", "period", label, "trips", snap.Len())
	return snap, nil
}

// LoadZones reads the zone lookup csv
func (l *Loader) LoadZones(ctx context.Context, location string) ([]Zone, error) {
	l.logger.Info("loading zones", "source", location)
	r, err := openSource(ctx, l.httpClient, location)
	if err != nil {
		return nil, &LoadError{Source: location, Err: err}
	}
	defer func() { _ = r.Close() }()

	zones, err := decodeZonesCSV(r)
	if err != nil {
		return nil, &LoadError{Source: location, Err: err}
	}
	l.logger.Info("zones loaded", "zones", len(zones))
	return zones, nil
}
