package mapping

// Values holds the normalized output of Apply, keyed by field key. Each
// entry is either nil (absent optional field) or the concrete Go value for
// the field's kind, so the typed getters below cannot fail on any Values
// produced by Apply against the matching schema.
type Values map[string]any

// String returns the field's value, or "" when absent.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// OptString returns a pointer to the field's value, or nil when absent.
func (v Values) OptString(key string) *string {
	if s, ok := v[key].(string); ok {
		return &s
	}
	return nil
}

// Bool returns the field's value, or false when absent.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// OptBool returns a pointer to the field's value, or nil when absent.
func (v Values) OptBool(key string) *bool {
	if b, ok := v[key].(bool); ok {
		return &b
	}
	return nil
}

// Float returns the field's value, or 0 when absent.
func (v Values) Float(key string) float64 {
	n, _ := v[key].(float64)
	return n
}

// OptFloat returns a pointer to the field's value, or nil when absent.
func (v Values) OptFloat(key string) *float64 {
	if n, ok := v[key].(float64); ok {
		return &n
	}
	return nil
}

// OptInt returns a pointer to the field's value, or nil when absent.
func (v Values) OptInt(key string) *int {
	if n, ok := v[key].(int); ok {
		return &n
	}
	return nil
}

// StringList returns the field's value; absent optional fields yield nil.
func (v Values) StringList(key string) []string {
	list, _ := v[key].([]string)
	return list
}

// Extensions returns the field's open map value.
func (v Values) Extensions(key string) map[string]any {
	m, _ := v[key].(map[string]any)
	return m
}

// Object returns the nested record's values, or nil when absent.
func (v Values) Object(key string) Values {
	nested, _ := v[key].(Values)
	return nested
}

// ObjectList returns the nested records of a sequence field.
func (v Values) ObjectList(key string) []Values {
	list, _ := v[key].([]Values)
	return list
}
