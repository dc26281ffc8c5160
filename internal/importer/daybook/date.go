package daybook

import (
	"strconv"
	"strings"
	"time"
)

// serialEpoch anchors spreadsheet day serials. Day 1 is 1899-12-31 in the
// source product's serial scheme (it inherits the 1900 leap-year bug, so
// 1899-12-30 is the working epoch for modern dates).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order against native date cells.
var dateLayouts = []string{
	"2-Jan-06",
	"02-Jan-2006",
	"2-1-2006",
	"02-01-2006",
	"2006-01-02",
	"2/1/2006",
}

// parseDate turns a date cell into a calendar date. Numeric cells are
// treated as day serials; anything unparsable returns ok=false and the
// caller degrades the field rather than rejecting the block.
func parseDate(s string) (t time.Time, serial float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, 0, false
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		// Plausible serial range: 1950..2100 roughly.
		if n > 18000 && n < 74000 {
			return serialEpoch.AddDate(0, 0, int(n)), n, true
		}

		return time.Time{}, 0, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, 0, true
		}
	}

	return time.Time{}, 0, false
}
