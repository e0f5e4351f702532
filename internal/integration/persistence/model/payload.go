package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func encodePayload(payload map[string]string) datatypes.JSON {
	if len(payload) == 0 {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func decodePayload(raw datatypes.JSON) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
