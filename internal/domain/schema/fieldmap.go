package schema

// Alias pairs an external wire key with the internal field name it stands for.
type Alias struct {
	External string
	Internal string
}

// FieldMap is a bidirectional rename table. Keys without an entry map to themselves.
type FieldMap struct {
	toInternal map[string]string
	toExternal map[string]string
}

// NewFieldMap builds the table from alias pairs.
func NewFieldMap(aliases ...Alias) FieldMap {
	m := FieldMap{
		toInternal: make(map[string]string, len(aliases)),
		toExternal: make(map[string]string, len(aliases)),
	}
	for _, a := range aliases {
		m.toInternal[a.External] = a.Internal
		m.toExternal[a.Internal] = a.External
	}

	return m
}

// Internal maps an external key to its internal name.
func (m FieldMap) Internal(key string) string {
	if internal, ok := m.toInternal[key]; ok {
		return internal
	}

	return key
}

// External maps an internal key to its wire name.
func (m FieldMap) External(key string) string {
	if external, ok := m.toExternal[key]; ok {
		return external
	}

	return key
}

// IsAlias reports whether key is an external alias.
func (m FieldMap) IsAlias(key string) bool {
	_, ok := m.toInternal[key]

	return ok
}
