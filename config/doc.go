// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It names the two trip snapshots to compare, the zone lookup table and the
// HTTP server settings.
package config
