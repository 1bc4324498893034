package main

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	defaultUserName     = "Unknown"
	defaultUserGender   = "male"
	defaultUserLanguage = "en"
)

// normalizeUser maps an exported learner record onto the user wire shape.
// The Telegram id is read from tg_id, falling back to id; a missing or
// non-positive value leaves it unset.
func normalizeUser(raw map[string]any) map[string]any {
	out := map[string]any{
		"name":     stringOr(raw["name"], defaultUserName),
		"gender":   stringOr(raw["gender"], defaultUserGender),
		"language": stringOr(raw["language"], defaultUserLanguage),
	}

	if tgID, ok := firstPositive(raw["tg_id"], raw["id"]); ok {
		out["tg_id"] = tgID
	}
	if v, ok := raw["recommendation_method"]; ok {
		out["recommendation_method"] = v
	}
	if n, ok := toInt64(raw["launch_count"]); ok {
		out["launch_count"] = n
	}
	if n, ok := toInt64(raw["current_bundle_version"]); ok {
		out["current_bundle_version"] = n
	}
	if n, ok := firstPositive(raw["bundle_version_at_install"], raw["bundleVersionAtInstall"]); ok {
		out["bundle_version_at_install"] = n
	}

	return out
}

// normalizeLog maps an exported log record onto the log wire shape.
// learner_id becomes user_id, the *_date keys become *_time and a numeric
// value is kept as its decimal text.
func normalizeLog(raw map[string]any) map[string]any {
	out := map[string]any{
		"user_id":         textOf(first(raw, "learner_id", "user_id")),
		"activity_id":     textOf(raw["activity_id"]),
		"type":            textOf(raw["type"]),
		"start_time":      first(raw, "start_date", "start_time"),
		"completion_time": first(raw, "completion_date", "completion_time"),
	}

	if v := raw["value"]; v != nil {
		out["value"] = textOf(v)
	}
	if v := raw["build_version"]; v != nil {
		out["build_version"] = textOf(v)
	}

	return out
}

func first(raw map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return v
		}
	}

	return nil
}

func firstPositive(values ...any) (int64, bool) {
	for _, v := range values {
		if n, ok := toInt64(v); ok && n > 0 {
			return n, true
		}
	}

	return 0, false
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}

	return fallback
}

// textOf renders scalars as text; absent values become "".
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}

		return string(b)
	}
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		if f, err := t.Float64(); err == nil && f == float64(int64(f)) {
			return int64(f), true
		}
	case float64:
		if t == float64(int64(t)) {
			return int64(t), true
		}
	case int64:
		return t, true
	case int:
		return int64(t), true
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n, true
		}
	}

	return 0, false
}
