package validator

import (
	"encoding/json"
	"math/big"
)

// ratOf extracts an exact rational value from an instance number. Decoded
// documents carry json.Number when produced by this module's decoders, but
// plain float64/int shapes from other decoders are accepted too.
func ratOf(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		if r, ok := new(big.Rat).SetString(n.String()); ok {
			return r, true
		}
		return nil, false
	case float64:
		return new(big.Rat).SetFloat64(n), true
	case float32:
		return new(big.Rat).SetFloat64(float64(n)), true
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case uint64:
		return new(big.Rat).SetInt(new(big.Int).SetUint64(n)), true
	}
	return nil, false
}

// isNumber reports whether v is a JSON number of any storage type.
func isNumber(v any) bool {
	_, ok := ratOf(v)
	return ok
}

// isIntegerValue reports whether v is a number with zero fractional part;
// 1.0 counts as an integer.
func isIntegerValue(v any) bool {
	r, ok := ratOf(v)
	return ok && r.IsInt()
}

// numText renders a number for messages, preferring the original source text.
func numText(v any) string {
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	if r, ok := ratOf(v); ok {
		return r.RatString()
	}
	return ""
}
