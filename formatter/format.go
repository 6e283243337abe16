package formatter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned by ParseFormat
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is an output encoding
type Format string

const (
	JSON     Format = "json"
	Protobuf Format = "pb"
)

// ParseFormat accepts json (default when empty) and pb/protobuf
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "pb", "protobuf":
		return Protobuf, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, s)
}

// ContentType returns the HTTP media type of the format
func (f Format) ContentType() string {
	if f == Protobuf {
		return "application/x-protobuf"
	}
	return "application/json"
}

// Encode serializes v in format f
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case Protobuf:
		return BuildProtobuf(v)
	default:
		return BuildJSON(v)
	}
}
