package models

import "time"

// CalendarDate drops the clock part of t and returns the same calendar day
// at UTC midnight. The calendar day is read in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayOfWeek returns 1 for Sunday through 7 for Saturday.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday()) + 1
}

// WeekStart returns the Sunday on or before the calendar day of t.
func WeekStart(t time.Time) time.Time {
	day := CalendarDate(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// ParseDate parses a "2006-01-02" date into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders the calendar day of t as "2006-01-02".
func FormatDate(t time.Time) string {
	return CalendarDate(t).Format(DateLayout)
}

// Timestamp truncates t to millisecond precision, the precision the local
// cache and the remote store keep.
func Timestamp(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli()).UTC()
}
