// Package transform turns loaded sheets into output records.
package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Clean normalizes a raw cell value for output.
// Blank text, NaN and infinities become nil, "TRUE"/"FALSE" in any case
// become booleans, and every other value keeps its type.
func Clean(v interface{}) interface{} {
	if IsAbsent(v) {
		return nil
	}
	if s, ok := v.(string); ok {
		switch {
		case strings.EqualFold(s, "TRUE"):
			return true
		case strings.EqualFold(s, "FALSE"):
			return false
		}
	}
	return v
}

// IsAbsent reports whether v carries no value: nil, empty text, NaN or an
// infinity.
func IsAbsent(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return math.IsNaN(x) || math.IsInf(x, 0)
	case float32:
		f := float64(x)
		return math.IsNaN(f) || math.IsInf(f, 0)
	}
	return false
}

// Text renders a cleaned value as text. Integers use base 10, floats the
// shortest decimal form, booleans "true"/"false". Nil renders as "".
func Text(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}
