package utils

import "time"

// All date/time values exchanged with the record store are ISO-8601 strings.
// Calendar-day boundaries follow the store convention: a day spans
// [DayStart, DayEnd] inclusive, so a row stamped exactly 23:59:59 still
// belongs to that day while 00:00:00 of the next day does not.
const (
	ISODateLayout      = "2006-01-02"
	ISOTimestampLayout = "2006-01-02T15:04:05"
)

// FormatISODate formats t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// FormatISOTimestamp formats t as YYYY-MM-DDTHH:MM:SS.
func FormatISOTimestamp(t time.Time) string {
	return t.Format(ISOTimestampLayout)
}

// DayStart returns the inclusive lower bound of a calendar day.
func DayStart(day string) string {
	return day + "T00:00:00"
}

// DayEnd returns the inclusive upper bound of a calendar day.
func DayEnd(day string) string {
	return day + "T23:59:59"
}

// DateOf returns the YYYY-MM-DD prefix of an ISO-8601 timestamp string.
// Plain date strings are returned unchanged.
func DateOf(ts string) string {
	if len(ts) < len(ISODateLayout) {
		return ts
	}
	return ts[:len(ISODateLayout)]
}

// WithinDay reports whether the ISO-8601 timestamp ts falls on the calendar
// day given as YYYY-MM-DD. Comparison is lexicographic, which matches
// chronological order for ISO-8601 strings.
func WithinDay(ts, day string) bool {
	return ts >= DayStart(day) && ts <= DayEnd(day)
}

// WeekStart returns the most recent Monday on or before t, truncated to
// midnight. Sunday counts as day 7 of the previous week, not day 0.
func WeekStart(t time.Time) time.Time {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	monday := t.AddDate(0, 0, -(day - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
