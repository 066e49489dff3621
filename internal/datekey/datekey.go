// Package datekey does local-calendar arithmetic on YYYY-MM-DD day keys.
//
// Every result is normalized to local noon so that date-only comparisons are
// exact and daylight-saving transitions never shift a value onto the
// neighbouring day.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Encode formats t's wall-clock date in its own location as YYYY-MM-DD.
func Encode(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Decode parses key in the local time zone. See DecodeIn.
func Decode(key string) (time.Time, bool) {
	return DecodeIn(key, time.Local)
}

// DecodeIn parses a Y-M-D key and returns noon of that day in loc.
// A missing, zero or non-numeric month or day falls back to 1; out-of-range
// values roll over the way time.Date normalizes them. The year must be numeric.
func DecodeIn(key string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	m, d := partOr1(parts, 1), partOr1(parts, 2)
	return time.Date(y, time.Month(m), d, 12, 0, 0, 0, loc), true
}

func partOr1(parts []string, i int) int {
	if i >= len(parts) {
		return 1
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// Valid reports whether key is a canonical zero-padded date key.
func Valid(key string) bool {
	_, err := time.Parse(layout, key)
	return err == nil
}

// Noon returns noon of t's calendar day in t's location.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// Today returns the local date key for the current instant.
func Today() string {
	return Encode(time.Now())
}

func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 12, 0, 0, 0, t.Location())
}

// AddMonths pins the day to the 15th before stepping so that e.g. Jan 31
// plus one month lands in February rather than overflowing into March.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 15, 12, 0, 0, 0, t.Location())
}

// AddDaysKey steps a key by n days. An undecodable key is returned unchanged.
func AddDaysKey(key string, n int) string {
	t, ok := Decode(key)
	if !ok {
		return key
	}
	return Encode(AddDays(t, n))
}

// WeekdayMondayZero returns 0 for Monday through 6 for Sunday.
func WeekdayMondayZero(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func StartOfWeekMonday(t time.Time) time.Time {
	return AddDays(t, -WeekdayMondayZero(t))
}

func EndOfWeekSunday(t time.Time) time.Time {
	return AddDays(StartOfWeekMonday(t), 6)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 12, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return EndOfMonth(t).Day()
}

// SameWeek reports whether a and b fall in the same Monday-Sunday week.
func SameWeek(a, b time.Time) bool {
	return Encode(StartOfWeekMonday(a)) == Encode(StartOfWeekMonday(b))
}

func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// FormatMMDD renders a key as MM/DD for chart labels.
func FormatMMDD(key string) string {
	if len(key) < 10 {
		return ""
	}
	return key[5:7] + "/" + key[8:10]
}
