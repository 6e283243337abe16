package trips

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when a source lacks a required column
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptySource is returned when a source has no usable rows
	ErrEmptySource = errors.New("source has no rows")
	// ErrUnsupportedFormat is returned for sources that are neither parquet nor csv
	ErrUnsupportedFormat = errors.New("unsupported source format")
	// ErrColumnType is returned when a column's type cannot hold the field
	ErrColumnType = errors.New("unsupported column type")
)

// LoadError reports which source failed to load
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func missingColumn(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, name)
}
