package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCandidateID is the structured log field key for the liked profile id.
	FieldCandidateID = "candidate_id"
	// FieldCandidateName is the structured log field key for the liked profile name.
	FieldCandidateName = "candidate_name"
	// FieldLikesRemaining is the structured log field key for the like budget.
	FieldLikesRemaining = "likes_remaining"
	// FieldPhase is the structured log field key for the matching loop phase.
	FieldPhase = "phase"
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

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced by a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CandidateFields describes a liked profile. Empty values are dropped.
func CandidateFields(id, name string) []zap.Field {
	return StringFields(
		StringField{Key: FieldCandidateID, Value: id},
		StringField{Key: FieldCandidateName, Value: name},
	)
}

// LikeFields describes a like outcome: the profile plus the budget reported back.
func LikeFields(id, name string, likesRemaining int) []zap.Field {
	return append(CandidateFields(id, name), zap.Int(FieldLikesRemaining, likesRemaining))
}
