package formatter

import (
	"encoding/json"
	"fmt"
)

// BuildJSON serializes view rows to JSON. Output is deterministic for equal input.
func BuildJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return b, nil
}
