// Package timeutil parses human-friendly reminder lead times.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	leadPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitMap     = map[string]time.Duration{
		"":        time.Minute, // bare numbers mean minutes
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
	}
)

// ParseLead parses a lead time like "15", "30m", "1h", or "1h30m" and returns
// whole minutes. Zero is a valid lead (remind at the start time).
func ParseLead(input string) (int, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return 0, fmt.Errorf("empty lead time")
	}

	remaining := lower
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := leadPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid lead time segment %q", strings.TrimSpace(remaining))
		}

		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid lead time value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported lead time unit %q", matches[2])
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	return int(total / time.Minute), nil
}

// FormatLead renders minutes using day/hour/minute tokens, "0m" for zero.
func FormatLead(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}

	type unit struct {
		label string
		value int
	}
	units := []unit{
		{"d", 24 * 60},
		{"h", 60},
		{"m", 1},
	}

	var parts []string
	remaining := minutes
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", remaining/u.value, u.label))
		remaining %= u.value
	}
	return strings.Join(parts, "")
}
