package store

import (
	"encoding/json"
	"fmt"
)

// marshalJSONColumn encodes a Go value for storage in a JSONB column.
// A nil value encodes as SQL NULL.
func marshalJSONColumn(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return data, nil
}

// unmarshalJSONColumn decodes raw JSONB bytes into dst. NULL columns (nil or
// empty input) leave dst untouched.
func unmarshalJSONColumn(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return nil
}
