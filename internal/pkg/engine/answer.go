package engine

import (
	"strconv"
	"strings"
)

// answerString renders an answer value the way condition comparisons expect:
// strings as-is, numbers without a trailing ".0", booleans as "true"/"false",
// slices joined with commas. The second return is false when the value is
// absent or empty, which makes the owning condition unresolved.
func answerString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return strings.Join(v, ","), true
	case []interface{}:
		if len(v) == 0 {
			return "", false
		}
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			s, _ := answerString(elem)
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), true
	default:
		return "", false
	}
}

// isAnswered reports whether a response value counts as a given answer:
// nil, empty strings and empty arrays do not; numeric zero and "0" do.
func isAnswered(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	case float64, int, int64, bool:
		return true
	default:
		s, ok := answerString(v)
		return ok && s != ""
	}
}
