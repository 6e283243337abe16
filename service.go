package taxicompare

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/theoremus-urban-solutions/taxi-compare/aggregate"
	"github.com/theoremus-urban-solutions/taxi-compare/config"
	"github.com/theoremus-urban-solutions/taxi-compare/trips"
)

// ErrNotReady is returned for queries issued before the first successful load
var ErrNotReady = errors.New("dataset not ready")

type dataset struct {
	engine   *aggregate.Engine
	renderer *ViewRenderer
	loadedAt time.Time
}

// Service owns the loaded dataset. Queries see either no dataset or a fully
// loaded one; the swap is a single atomic store.
type Service struct {
	cfg     config.DataConfig
	loader  *trips.Loader
	logger  *slog.Logger
	current atomic.Pointer[dataset]
	loadMu  sync.Mutex
}

func NewService(cfg config.DataConfig, loader *trips.Loader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if loader == nil {
		loader = trips.NewLoader(trips.WithLogger(logger))
	}
	return &Service{cfg: cfg, loader: loader, logger: logger}
}

// Load reads every configured source and publishes the result. On failure the
// previously published dataset, if any, stays in place.
func (s *Service) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	start := time.Now()
	st, err := s.loader.Load(ctx, s.cfg)
	if err != nil {
		s.logger.Error("dataset load failed", "error", err)
		return err
	}
	loadDuration.Set(time.Since(start).Seconds())
	s.Publish(st)
	return nil
}

// Reload replaces the published dataset with a fresh load of the same sources
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Publish makes st the dataset answered by all subsequent queries
func (s *Service) Publish(st *trips.Store) {
	engine := aggregate.NewEngine(st)
	for _, snap := range st.Snapshots() {
		snapshotTrips.WithLabelValues(snap.Label).Set(float64(snap.Len()))
	}
	s.current.Store(&dataset{engine: engine, renderer: NewViewRenderer(engine), loadedAt: time.Now()})
	s.logger.Info("dataset ready", "snapshots", st.Labels(), "zones", st.ZoneCount())
}

// Ready reports whether a dataset has been published
func (s *Service) Ready() bool {
	return s.current.Load() != nil
}

// Engine returns the engine over the published dataset
func (s *Service) Engine() (*aggregate.Engine, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, ErrNotReady
	}
	return ds.engine, nil
}

func (s *Service) renderer() (*ViewRenderer, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, ErrNotReady
	}
	return ds.renderer, nil
}

// LoadedAt returns when the published dataset was swapped in
func (s *Service) LoadedAt() (time.Time, bool) {
	ds := s.current.Load()
	if ds == nil {
		return time.Time{}, false
	}
	return ds.loadedAt, true
}
