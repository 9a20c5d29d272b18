package service

import (
	"encoding/json"
	"fmt"
)

// marshalState snapshots an entity for the before/after fields of an audit
// record
func marshalState(v interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit state: %w", err)
	}
	return data, nil
}
