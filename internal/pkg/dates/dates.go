package dates

import "time"

const Layout = "2006-01-02"

// Date normalizes t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func New(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the calendar day of now as seen in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Date(now.In(loc))
}

func AddDays(t time.Time, n int) time.Time {
	return Date(t).AddDate(0, 0, n)
}

// Between returns the number of whole days from a to b.
func Between(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// Nights lists the days of the half-open period [start, end).
func Nights(start, end time.Time) []time.Time {
	start, end = Date(start), Date(end)
	if !end.After(start) {
		return nil
	}
	out := make([]time.Time, 0, Between(start, end))
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Span lists the days of the closed period [start, end].
func Span(start, end time.Time) []time.Time {
	return Nights(start, AddDays(end, 1))
}

// Within reports whether day lies in the closed window [start, end].
func Within(day, start, end time.Time) bool {
	day = Date(day)
	return !day.Before(Date(start)) && !day.After(Date(end))
}
