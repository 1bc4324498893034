// Package schema normalizes payloads between their external (wire) form and
// the internal field layout, and decodes them into entity inputs.
//
// ToInternal renames aliased keys and fills declared defaults for absent
// fields. ToExternal renames them back. Both recurse into child schemas, so
// nested conversations, messages and activity items are mapped too. For any
// x produced by ToExternal, ToExternal(ToInternal(x)) equals x.
package schema

// Schema describes one entity shape.
type Schema struct {
	Name string

	// Fields renames between wire and internal keys.
	Fields FieldMap

	// Defaults produce the value of an absent field, keyed by internal name.
	// A nil result stands for an explicit null.
	Defaults map[string]func() any

	// Children map an internal key holding an object or an array of objects
	// to the schema of that object.
	Children map[string]*Schema

	// Strict rejects keys the target struct does not declare.
	Strict bool
}

// ToInternal returns a normalized copy of payload. payload is not modified.
func (s *Schema) ToInternal(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload)+len(s.Defaults))

	// Plain keys first so an alias wins when both spellings are present.
	for key, value := range payload {
		if s.Fields.IsAlias(key) {
			continue
		}
		out[key] = s.child(key, value, (*Schema).ToInternal)
	}
	for key, value := range payload {
		if !s.Fields.IsAlias(key) {
			continue
		}
		internal := s.Fields.Internal(key)
		out[internal] = s.child(internal, value, (*Schema).ToInternal)
	}

	for key, def := range s.Defaults {
		if _, ok := out[key]; !ok {
			out[key] = def()
		}
	}

	return out
}

// ToExternal returns a copy of doc with internal keys renamed to their wire names.
func (s *Schema) ToExternal(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[s.Fields.External(key)] = s.child(key, value, (*Schema).ToExternal)
	}

	return out
}

func (s *Schema) child(key string, value any, mapFn func(*Schema, map[string]any) map[string]any) any {
	child, ok := s.Children[key]
	if !ok {
		return value
	}

	switch v := value.(type) {
	case map[string]any:
		return mapFn(child, v)
	case []any:
		mapped := make([]any, len(v))
		for i, item := range v {
			if obj, ok := item.(map[string]any); ok {
				mapped[i] = mapFn(child, obj)
			} else {
				mapped[i] = item
			}
		}

		return mapped
	default:
		return value
	}
}

func null() any { return nil }

func zero() any { return 0 }

func emptyList() any { return []any{} }
