package oes

import (
	"math"
	"strconv"
	"strings"

	"wagesync/internal/domain/wage"
)

const (
	// MarkerNotPublishable flags data that does not meet publication
	// standards (also used for wages above the top reported bracket).
	MarkerNotPublishable = "#"
	// MarkerNotReleasable flags an estimate that could not be released.
	MarkerNotReleasable = "*"
)

// Float normalizes one cell. Nil, empty, suppressed and unparsable cells
// are all absent (nil); zero is a real value and survives.
func Float(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case *string:
		if x == nil {
			return nil
		}
		return Float(*x)
	case string:
		parsed, ok := parseCell(x)
		if !ok {
			return nil
		}
		f = parsed
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Count normalizes a count-like cell, rounding to the nearest integer. A
// count outside the int64 range is absent.
func Count(v any) *int64 {
	f := Float(v)
	if f == nil {
		return nil
	}
	n, ok := wage.RoundCount(*f)
	if !ok {
		return nil
	}
	return &n
}

func parseCell(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, MarkerNotPublishable) || strings.Contains(s, MarkerNotReleasable) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
