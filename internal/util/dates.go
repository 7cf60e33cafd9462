package util

import (
	"errors"
	"strings"
	"time"
)

// ParseDateRange parses optional YYYY-MM-DD boundaries into an inclusive
// start and an exclusive end, so a query for a single day covers the whole
// day. Reversed boundaries are swapped.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	parse := func(s string) (time.Time, bool, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false, nil
		}
		t, e := time.Parse("2006-01-02", s)
		if e != nil {
			return time.Time{}, false, errors.New("invalid date format (use YYYY-MM-DD)")
		}
		return t, true, nil
	}

	var rawStart, rawEnd time.Time
	var startOk, endOk bool

	if startStr != nil {
		if rawStart, startOk, err = parse(*startStr); err != nil {
			return time.Time{}, false, time.Time{}, false, err
		}
	}
	if endStr != nil {
		if rawEnd, endOk, err = parse(*endStr); err != nil {
			return time.Time{}, false, time.Time{}, false, err
		}
	}

	if startOk && endOk && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if startOk {
		start = rawStart
		hasStart = true
	}
	if endOk {
		endExclusive = rawEnd.AddDate(0, 0, 1)
		hasEnd = true
	}
	return start, hasStart, endExclusive, hasEnd, nil
}
