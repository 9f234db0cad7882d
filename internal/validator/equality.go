package validator

// canonicalEqual compares two instance values by their canonical JSON forms:
// numbers by exact numeric value regardless of storage type (1 equals 1.0),
// objects by key set with order ignored, arrays element-wise in order.
func canonicalEqual(a, b any) bool {
	if ra, ok := ratOf(a); ok {
		rb, ok := ratOf(b)
		return ok && ra.Cmp(rb) == 0
	}
	switch va := a.(type) {
	case nil:
		return b == nil
	case bool:
		vb, ok := b.(bool)
		return ok && va == vb
	case string:
		vb, ok := b.(string)
		return ok && va == vb
	case []any:
		vb, ok := b.([]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !canonicalEqual(va[i], vb[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		vb, ok := b.(map[string]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for k, x := range va {
			y, ok := vb[k]
			if !ok || !canonicalEqual(x, y) {
				return false
			}
		}
		return true
	}
	return false
}

// jsonTypeOf names the JSON type of v for error messages.
func jsonTypeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	if isIntegerValue(v) {
		return "integer"
	}
	if isNumber(v) {
		return "number"
	}
	return "unknown"
}
