// Package formatter serializes view rows for the HTTP and CLI outputs.
//
// This package is organized into:
// - format.go: output format selection and content types
// - json.go: JSON serialization (the contract format)
// - schema.go: runtime descriptor of views.proto
// - protobuf.go: typed binary protobuf serialization
package formatter
