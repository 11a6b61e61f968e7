package services

import (
	"math"
	"sort"
	"strconv"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/pkg/utils"
)

// Pure aggregation helpers shared by the dashboard and billing services.
// They operate on plain slices already fetched from the record store; all
// date handling follows the ISO-8601 string conventions in pkg/utils.

// DatedValue is a value attached to an ISO-8601 date or timestamp.
type DatedValue struct {
	Date  string
	Value float64
}

// KeyedValue is a value attached to a grouping key.
type KeyedValue struct {
	Key   string
	Value float64
}

// DayBucket is one calendar-day slot of a time series.
type DayBucket struct {
	Date  string
	Value float64
}

// KeyTotal is one grouped sum.
type KeyTotal struct {
	Key   string
	Total float64
}

// CountOnDay counts timestamps falling on the given calendar day. The day
// spans [T00:00:00, T23:59:59] inclusive; a row stamped exactly on the
// boundary second still counts.
func CountOnDay(timestamps []string, day string) int {
	count := 0
	for _, ts := range timestamps {
		if utils.WithinDay(ts, day) {
			count++
		}
	}
	return count
}

// SumOnDay sums the values whose date falls on the given calendar day.
// Entries may carry plain dates or full timestamps.
func SumOnDay(entries []DatedValue, day string) float64 {
	var total float64
	for _, e := range entries {
		if utils.DateOf(e.Date) == day {
			total += e.Value
		}
	}
	return total
}

// PercentDelta returns the percentage change from previous to current,
// rounded to one decimal. A zero previous yields 0 rather than a division
// by zero; screens show "no change" when there is no baseline.
func PercentDelta(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round1((current - previous) / previous * 100)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// WeeklySeries buckets entries into the seven calendar days starting at
// weekStart, summing values per day. Days with no entries yield 0; the
// result always has exactly 7 buckets.
func WeeklySeries(entries []DatedValue, weekStart time.Time) []DayBucket {
	buckets := make([]DayBucket, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		date := utils.FormatISODate(weekStart.AddDate(0, 0, i))
		buckets[i] = DayBucket{Date: date}
		index[date] = i
	}
	for _, e := range entries {
		if i, ok := index[utils.DateOf(e.Date)]; ok {
			buckets[i].Value += e.Value
		}
	}
	return buckets
}

// SumByKey groups entries by key and sums their values, ordered by
// descending total. Ties keep first-encountered order.
func SumByKey(entries []KeyedValue) []KeyTotal {
	totals := make(map[string]int) // key -> position in result
	result := []KeyTotal{}
	for _, e := range entries {
		if i, ok := totals[e.Key]; ok {
			result[i].Total += e.Value
		} else {
			totals[e.Key] = len(result)
			result = append(result, KeyTotal{Key: e.Key, Total: e.Value})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

// MergeRecentActivity merges two activity streams into one feed sorted
// descending by date and truncated to limit entries. Entries are expected
// to carry their origin tag already; lexicographic comparison of ISO-8601
// dates matches chronological order.
func MergeRecentActivity(a, b []models.ActivityEntry, limit int) []models.ActivityEntry {
	merged := make([]models.ActivityEntry, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// dayOfMonthLabel is the chart label used for daily series.
func dayOfMonthLabel(t time.Time) string {
	return strconv.Itoa(t.Day())
}
