package git

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeDateRegex = regexp.MustCompile(`^(\d+)[.\s]+(second|minute|hour|day|week|month|year)s?[.\s]+ago$`)

// parseSince converts a "since" value to an absolute time. It accepts RFC 3339,
// YYYY-MM-DD (in now's location), "yesterday", and git-style relative dates
// such as "2 weeks ago" or "3.days.ago".
func parseSince(value string, now time.Time) (time.Time, error) {
	v := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, v, now.Location()); err == nil {
		return t, nil
	}

	v = strings.ToLower(v)
	if v == "yesterday" {
		return now.AddDate(0, 0, -1), nil
	}

	m := relativeDateRegex.FindStringSubmatch(v)
	if m == nil {
		return time.Time{}, &InvalidDateError{Value: value}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value}
	}

	switch m[2] {
	case "second":
		return now.Add(-time.Duration(n) * time.Second), nil
	case "minute":
		return now.Add(-time.Duration(n) * time.Minute), nil
	case "hour":
		return now.Add(-time.Duration(n) * time.Hour), nil
	case "day":
		return now.AddDate(0, 0, -n), nil
	case "week":
		return now.AddDate(0, 0, -7*n), nil
	case "month":
		return now.AddDate(0, -n, 0), nil
	default:
		return now.AddDate(-n, 0, 0), nil
	}
}

// parseBound parses a canonical before/after bound.
func parseBound(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value}
	}
	return t, nil
}
