// Package swim holds the pure aggregation logic for swim-meet results:
// race-time parsing, meet-name normalization, event classification,
// personal-best reduction and opponent-pool ranking. Nothing in here
// touches the database or the HTTP layer.
package swim

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseSeconds converts a free-text race time into seconds.
// Accepted shapes are "SS.ss", "MM:SS.ss" and "HH:MM:SS.ss"; colon
// segments accumulate right to left with a x60 multiplier per step.
// The second return value is false when the string cannot be parsed.
// Zero and negative values parse fine here; callers treat them the
// same as a parse failure when aggregating.
func ParseSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if !strings.ContainsFunc(s, unicode.IsDigit) {
		return 0, false
	}

	if !strings.Contains(s, ":") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	var secs, mul float64 = 0, 1
	parts := strings.Split(s, ":")
	for i := len(parts) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return 0, false
		}
		secs += v * mul
		mul *= 60
	}
	return secs, true
}

// validSeconds parses a result and reports whether it is usable for
// aggregation: parseable, finite and strictly positive.
func validSeconds(result string) (float64, bool) {
	sec, ok := ParseSeconds(result)
	if !ok || sec <= 0 {
		return 0, false
	}
	return sec, true
}
