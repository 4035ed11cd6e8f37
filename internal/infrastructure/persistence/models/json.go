package models

import (
	"encoding/json"

	"go.uber.org/zap"
)

var modelLogger = zap.L().Named("persistence.models")

// marshalStringSlice serializes a string slice into a JSON text column.
// An empty or nil slice is stored as "[]" so the column is never NULL.
func marshalStringSlice(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(values)
	if err != nil {
		modelLogger.Warn("failed to serialize string slice", zap.Error(err))
		return "[]"
	}
	return string(raw)
}

// unmarshalStringSlice parses a JSON text column back into a string slice.
// Malformed content is logged and treated as empty rather than failing the read.
func unmarshalStringSlice(raw, column string) []string {
	if raw == "" || raw == "[]" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		modelLogger.Warn("failed to parse JSON column",
			zap.String("column", column),
			zap.String("raw_json", raw),
			zap.Error(err))
		return []string{}
	}
	return values
}
