package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUser(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want map[string]any
	}{
		{
			name: "defaults and id fallback",
			raw:  map[string]any{"id": json.Number("77")},
			want: map[string]any{
				"tg_id":    int64(77),
				"name":     "Unknown",
				"gender":   "male",
				"language": "en",
			},
		},
		{
			name: "tg_id wins over id and camelCase install version",
			raw: map[string]any{
				"tg_id":                  json.Number("5"),
				"id":                     json.Number("6"),
				"name":                   "Ann",
				"gender":                 "female",
				"language":               "ru",
				"recommendation_method":  "kb",
				"launch_count":           json.Number("3"),
				"current_bundle_version": json.Number("12"),
				"bundleVersionAtInstall": json.Number("10"),
				"surname":                "Ignored",
			},
			want: map[string]any{
				"tg_id":                     int64(5),
				"name":                      "Ann",
				"gender":                    "female",
				"language":                  "ru",
				"recommendation_method":     "kb",
				"launch_count":              int64(3),
				"current_bundle_version":    int64(12),
				"bundle_version_at_install": int64(10),
			},
		},
		{
			name: "zero telegram id stays unset",
			raw:  map[string]any{"tg_id": json.Number("0"), "name": ""},
			want: map[string]any{
				"name":     "Unknown",
				"gender":   "male",
				"language": "en",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeUser(tt.raw))
		})
	}
}

func TestNormalizeLog(t *testing.T) {
	raw := map[string]any{
		"learner_id":      json.Number("42"),
		"activity_id":     "lesson-1",
		"type":            "quiz",
		"value":           json.Number("0.75"),
		"start_date":      "2024-05-01T10:00:00",
		"completion_date": "2024-05-01T10:05:00",
		"build_version":   json.Number("7"),
	}

	assert.Equal(t, map[string]any{
		"user_id":         "42",
		"activity_id":     "lesson-1",
		"type":            "quiz",
		"value":           "0.75",
		"start_time":      "2024-05-01T10:00:00",
		"completion_time": "2024-05-01T10:05:00",
		"build_version":   "7",
	}, normalizeLog(raw))
}

func TestNormalizeLog_AlreadyNormalized(t *testing.T) {
	raw := map[string]any{
		"user_id":         "u1",
		"activity_id":     "a",
		"type":            "t",
		"start_time":      "2024-05-01T10:00:00Z",
		"completion_time": "2024-05-01T10:05:00Z",
	}

	got := normalizeLog(raw)
	assert.Equal(t, "u1", got["user_id"])
	assert.Equal(t, "2024-05-01T10:00:00Z", got["start_time"])
	assert.NotContains(t, got, "value")
	assert.NotContains(t, got, "build_version")
}

func TestToInt64(t *testing.T) {
	n, ok := toInt64(json.Number("12.0"))
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = toInt64(json.Number("1.5"))
	assert.False(t, ok)

	n, ok = toInt64(" 9 ")
	assert.True(t, ok)
	assert.Equal(t, int64(9), n)

	_, ok = toInt64(nil)
	assert.False(t, ok)
}
