// Package analytics turns mood entries and the gentle-action log into
// chart series, summaries and streak text. Everything here is a pure
// function of its inputs.
package analytics

import (
	"fmt"
	"time"

	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
)

// Window selects the calendar span a series covers.
type Window int

const (
	Weekly Window = iota
	Monthly
)

func (w Window) String() string {
	if w == Monthly {
		return "monthly"
	}
	return "weekly"
}

// ParseWindow accepts "weekly"/"week"/"7" and "monthly"/"month"/"30".
func ParseWindow(s string) (Window, error) {
	switch s {
	case "weekly", "week", "7":
		return Weekly, nil
	case "monthly", "month", "30":
		return Monthly, nil
	}
	return Weekly, fmt.Errorf("unknown window %q", s)
}

// Point is one day of a series. Value is nil when nothing was logged.
type Point struct {
	DateKey string   `json:"dateKey"`
	Value   *float64 `json:"value"`
}

// Bounds returns the first and last day of the window containing anchor,
// both at local noon.
func Bounds(w Window, anchor time.Time) (start, end time.Time) {
	a := datekey.Noon(anchor)
	if w == Monthly {
		return datekey.StartOfMonth(a), datekey.EndOfMonth(a)
	}
	return datekey.StartOfWeekMonday(a), datekey.EndOfWeekSunday(a)
}

// BuildSeries averages the scores logged on each day of the window that
// contains anchor. The series always covers the whole window, including days
// after today, so a weekly series has 7 points and a monthly one has as
// many points as the month has days.
func BuildSeries(entries []mood.Entry, w Window, anchor time.Time) []Point {
	type acc struct {
		sum float64
		n   int
	}
	byDay := make(map[string]acc, len(entries))
	for _, e := range entries {
		a := byDay[e.DateKey]
		a.sum += e.Score()
		a.n++
		byDay[e.DateKey] = a
	}

	start, end := Bounds(w, anchor)
	points := make([]Point, 0, 31)
	for d := start; !d.After(end); d = datekey.AddDays(d, 1) {
		key := datekey.Encode(d)
		p := Point{DateKey: key}
		if a, ok := byDay[key]; ok && a.n > 0 {
			avg := a.sum / float64(a.n)
			p.Value = &avg
		}
		points = append(points, p)
	}
	return points
}

// Values extracts the value column of a series.
func Values(series []Point) []*float64 {
	vals := make([]*float64, len(series))
	for i, p := range series {
		vals[i] = p.Value
	}
	return vals
}
