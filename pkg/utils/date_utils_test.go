package utils_test

import (
	"testing"
	"time"

	"gasgestor_backend/pkg/utils"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2026, 8, 24, 15, 30, 0, 0, time.Local), "2026-08-24"},
		{"wednesday rolls back", time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local), "2026-08-24"},
		{"saturday rolls back", time.Date(2026, 8, 29, 23, 59, 59, 0, time.Local), "2026-08-24"},
		{"sunday belongs to prior monday", time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local), "2026-08-24"},
		{"month boundary", time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local), "2026-08-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.WeekStart(tt.in)
			if utils.FormatISODate(got) != tt.want {
				t.Errorf("WeekStart(%v) = %s, want %s", tt.in, utils.FormatISODate(got), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("WeekStart(%v) is not midnight: %v", tt.in, got)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	if got := utils.DayStart("2026-08-24"); got != "2026-08-24T00:00:00" {
		t.Errorf("DayStart = %s", got)
	}
	if got := utils.DayEnd("2026-08-24"); got != "2026-08-24T23:59:59" {
		t.Errorf("DayEnd = %s", got)
	}
}

func TestWithinDay(t *testing.T) {
	day := "2026-08-24"
	tests := []struct {
		ts   string
		want bool
	}{
		{"2026-08-24T00:00:00", true},
		{"2026-08-24T12:00:00", true},
		{"2026-08-24T23:59:59", true}, // upper bound is inclusive
		{"2026-08-25T00:00:00", false},
		{"2026-08-23T23:59:59", false},
	}
	for _, tt := range tests {
		if got := utils.WithinDay(tt.ts, day); got != tt.want {
			t.Errorf("WithinDay(%s, %s) = %v, want %v", tt.ts, day, got, tt.want)
		}
	}
}

func TestDateOf(t *testing.T) {
	if got := utils.DateOf("2026-08-24T15:04:05"); got != "2026-08-24" {
		t.Errorf("DateOf(timestamp) = %s", got)
	}
	if got := utils.DateOf("2026-08-24"); got != "2026-08-24" {
		t.Errorf("DateOf(plain date) = %s", got)
	}
}

func TestFormatISOTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 24, 9, 5, 1, 0, time.Local)
	if got := utils.FormatISOTimestamp(ts); got != "2026-08-24T09:05:01" {
		t.Errorf("FormatISOTimestamp = %s", got)
	}
}
