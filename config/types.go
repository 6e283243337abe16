package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port      int    `yaml:"port" validate:"gt=0,lte=65535"`
	StaticDir string `yaml:"staticDir" validate:"omitempty"`
	// Metrics exposes /metrics when true
	Metrics *bool `yaml:"metrics"`
}

// SnapshotConfig names one trip snapshot and where to read it from.
// Path is a local file or an http(s) URL; the format follows the extension.
type SnapshotConfig struct {
	Label string `yaml:"label" validate:"required"`
	Path  string `yaml:"path" validate:"required"`
}

// DataConfig contains the trip snapshots and the zone lookup source
type DataConfig struct {
	Snapshots []SnapshotConfig `yaml:"snapshots" validate:"len=2,unique=Label,dive"`
	Zones     string           `yaml:"zones" validate:"required"`
}

// LoggingConfig contains log level and handler format
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// MetricsEnabled reports whether the Prometheus endpoint is served. Defaults to true.
func (s ServerConfig) MetricsEnabled() bool {
	return s.Metrics == nil || *s.Metrics
}
