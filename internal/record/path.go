package record

import (
	"strconv"
	"strings"
)

// Lookup resolves a dotted field path against an object, e.g. "material.name"
// or "unit_obj.symbol". Returns the value and whether the full path resolved.
// Any missing segment or non-object intermediate yields (nil, false).
func Lookup(obj Object, path string) (Value, bool) {
	if obj == nil || path == "" {
		return nil, false
	}

	current := Value(obj)
	for _, segment := range strings.Split(path, ".") {
		inner, ok := current.(Object)
		if !ok {
			return nil, false
		}
		next, exists := inner[segment]
		if !exists {
			return nil, false
		}
		current = next
	}
	return current, true
}

// GetString returns the string form of obj[field], or "" when the field is
// absent or not a string.
func GetString(obj Object, field string) string {
	v, ok := Lookup(obj, field)
	if !ok {
		return ""
	}
	s, ok := v.(String)
	if !ok {
		return ""
	}
	return string(s)
}

// Compare orders two values permissively, the way the emulated remote API
// compares loosely-typed columns:
//
//   - two Numbers compare numerically
//   - two Strings compare lexicographically
//   - two Bools order false before true
//   - nil and Null coerce to the empty string
//   - mixed types fall back to comparing canonical string forms
//
// Returns -1, 0, or 1.
func Compare(a, b Value) int {
	if an, ok := a.(Number); ok {
		if bn, ok := b.(Number); ok {
			switch {
			case float64(an) < float64(bn):
				return -1
			case float64(an) > float64(bn):
				return 1
			default:
				return 0
			}
		}
	}
	if ab, ok := a.(Bool); ok {
		if bb, ok := b.(Bool); ok {
			switch {
			case !bool(ab) && bool(bb):
				return -1
			case bool(ab) && !bool(bb):
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(coerceString(a), coerceString(b))
}

// coerceString renders a value the way the permissive comparison path needs:
// missing and null become "", scalars their obvious text form, and composite
// values their JSON encoding.
func coerceString(v Value) string {
	switch val := v.(type) {
	case nil, Null:
		return ""
	case String:
		return string(val)
	case Number:
		return strconv.FormatFloat(float64(val), 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(val))
	default:
		data, err := MarshalValue(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Equal reports deep equality of two values.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil, Null:
		_, isNull := b.(Null)
		return b == nil || isNull
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, elem := range av {
			other, exists := bv[k]
			if !exists || !Equal(elem, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of a value. Mutating the copy never affects
// the original.
func Clone(v Value) Value {
	switch val := v.(type) {
	case Array:
		out := make(Array, len(val))
		for i, elem := range val {
			out[i] = Clone(elem)
		}
		return out
	case Object:
		out := make(Object, len(val))
		for k, elem := range val {
			out[k] = Clone(elem)
		}
		return out
	default:
		// Scalars are immutable.
		return v
	}
}

// Merge overlays patch onto base, returning a new object. Top-level keys in
// patch replace base values wholesale; there is no recursive merge, matching
// how the remote API applies update patches.
func Merge(base, patch Object) Object {
	out := make(Object, len(base)+len(patch))
	for k, v := range base {
		out[k] = Clone(v)
	}
	for k, v := range patch {
		out[k] = Clone(v)
	}
	return out
}
