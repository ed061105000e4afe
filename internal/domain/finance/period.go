// Package finance is the financial aggregation and tax computation engine.
//
// Every function in this package is pure: it takes an immutable snapshot of
// invoices and expenses (already fetched by the caller) and returns derived
// figures. There is no I/O, no caching and no mutation of the input slices,
// so concurrent calls need no coordination.
//
// Malformed input never produces an error. Unparsable dates resolve to the
// period sentinel 0 and simply drop out of year/quarter-filtered figures;
// missing enum fields fall back to their documented defaults.
package finance

import "strconv"

// Year extracts the year from a date string starting with "YYYY-MM-DD".
// Returns 0 when the string is too short or the prefix is not a number.
// 0 is a valid sentinel meaning "unknown period": such records are excluded
// from year-filtered views and from available-years discovery.
func Year(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

// Quarter extracts the calendar quarter (1-4) from a date string starting
// with "YYYY-MM-DD", via ((month-1)/3)+1. Returns 0 when the month digits
// cannot be parsed or parse to something below 1.
func Quarter(date string) int {
	if len(date) < 7 {
		return 0
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil || m < 1 {
		return 0
	}
	return ((m - 1) / 3) + 1
}

// QuarterOfMonth maps a month number (1-12) to its calendar quarter.
func QuarterOfMonth(m int) int {
	if m < 1 {
		return 0
	}
	return ((m - 1) / 3) + 1
}
