package domain

import "time"

// Bookings are accepted for tomorrow through the next eight days. The
// window slides with the server's current date and is not configurable
// per request.
const (
	BookingWindowOffset = 1
	BookingWindowDays   = 8

	DateLayout = "2006-01-02"
)

// BookableDates returns the dates open for booking relative to now, as
// midnight UTC values in ascending order.
func BookableDates(now time.Time) []time.Time {
	today := Midnight(now)

	dates := make([]time.Time, 0, BookingWindowDays)
	for i := BookingWindowOffset; i < BookingWindowOffset+BookingWindowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}

	return dates
}

// InBookingWindow reports whether date falls within the rolling window,
// today+1 through today+8 inclusive. Only the calendar date matters; time
// components are discarded.
func InBookingWindow(now, date time.Time) bool {
	today := Midnight(now)
	day := Midnight(date)

	first := today.AddDate(0, 0, BookingWindowOffset)
	last := today.AddDate(0, 0, BookingWindowOffset+BookingWindowDays-1)

	return !day.Before(first) && !day.After(last)
}

// Midnight truncates t to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
