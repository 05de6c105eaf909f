package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldService is the structured log field key for the matching service URL.
	FieldService = "service_url"
	// FieldFile is the structured log field key for the submitted file name.
	FieldFile = "file"
	// FieldAttempt is the structured log field key for the submission correlation id.
	FieldAttempt = "attempt_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger, defaulting to a
// no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithService attaches the service URL field to the provided logger.
func WithService(logger *zap.Logger, serviceURL string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldService, Value: serviceURL})...)
}
