package analytics

import (
	"encoding/json"
	"fmt"

	"github.com/sadopc/moodr/internal/datekey"
)

// maxStreakWalk bounds the backward walk in ComputeStreak.
const maxStreakWalk = 365

// DayStat is the suggestion tally recorded for one day.
type DayStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// CompletionLog is the gentle-action record: the days an action was
// completed, plus optional per-day tallies. The two are loaded separately
// and joined with mood entries only by day key.
type CompletionLog struct {
	Days  []string
	Stats map[string]DayStat
}

// Has reports whether key is in the completed-days list.
func (l CompletionLog) Has(key string) bool {
	for _, d := range l.Days {
		if d == key {
			return true
		}
	}
	return false
}

// DayText describes a day's tally as "3/4 completed". A day that is marked
// done but has no tally renders as "—/— completed". ok is false when the day
// appears in neither source.
func (l CompletionLog) DayText(key string) (string, bool) {
	st, hasStat := l.Stats[key]
	if !hasStat && !l.Has(key) {
		return "", false
	}
	if hasStat {
		return fmt.Sprintf("%d/%d completed", st.Completed, st.Total), true
	}
	return "—/— completed", true
}

// ParseCompletionDays decodes a stored JSON array of day keys. Non-string
// elements are dropped; malformed input yields an empty list.
func ParseCompletionDays(data []byte) []string {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []string{}
	}
	days := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			days = append(days, s)
		}
	}
	return days
}

// ParseCompletionStats decodes a stored JSON object of day key to tally.
// Anything but an object yields an empty map; entries that do not decode
// as a tally are dropped.
func ParseCompletionStats(data []byte) map[string]DayStat {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return map[string]DayStat{}
	}
	stats := make(map[string]DayStat, len(raw))
	for k, v := range raw {
		var st DayStat
		if err := json.Unmarshal(v, &st); err == nil {
			stats[k] = st
		}
	}
	return stats
}

// CountInRange counts logged days between startKey and endKey inclusive.
// Days are compared as local-noon instants; keys that do not decode never
// count, and duplicates count once per occurrence.
func CountInRange(days []string, startKey, endKey string) int {
	start, ok1 := datekey.Decode(startKey)
	end, ok2 := datekey.Decode(endKey)
	if !ok1 || !ok2 {
		return 0
	}
	n := 0
	for _, k := range days {
		t, ok := datekey.Decode(k)
		if !ok {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			n++
		}
	}
	return n
}

// ComputeStreak counts consecutive logged days ending at todayKey. The walk
// is capped so a corrupt log cannot loop for long.
func ComputeStreak(days []string, todayKey string) int {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	streak := 0
	cursor := todayKey
	for {
		if _, ok := set[cursor]; !ok {
			break
		}
		streak++
		if streak > maxStreakWalk {
			break
		}
		cursor = datekey.AddDaysKey(cursor, -1)
	}
	return streak
}

// Trend compares the last seven days with the seven before them.
type Trend struct {
	Last7  int
	Prev7  int
	Streak int
}

func (t Trend) Diff() int { return t.Last7 - t.Prev7 }

// ComputeTrend evaluates the week-over-week trend ending at todayKey.
func ComputeTrend(days []string, todayKey string) Trend {
	return Trend{
		Last7:  CountInRange(days, datekey.AddDaysKey(todayKey, -6), todayKey),
		Prev7:  CountInRange(days, datekey.AddDaysKey(todayKey, -13), datekey.AddDaysKey(todayKey, -7)),
		Streak: ComputeStreak(days, todayKey),
	}
}

// TrendPhrase renders a week-over-week difference.
func TrendPhrase(diff int) string {
	switch {
	case diff > 0:
		return fmt.Sprintf("up %d vs last week", diff)
	case diff < 0:
		return fmt.Sprintf("down %d vs last week", -diff)
	}
	return "same as last week"
}

func StreakText(streak int) string {
	if streak == 1 {
		return "a 1-day streak"
	}
	return fmt.Sprintf("%d-day streak", streak)
}

func (t Trend) String() string {
	return fmt.Sprintf("Suggestions: %d/7 days (%s) · %s", t.Last7, TrendPhrase(t.Diff()), StreakText(t.Streak))
}

// TrendOneLiner is the gentle-action summary line shown under the chart.
func TrendOneLiner(days []string, todayKey string) string {
	return ComputeTrend(days, todayKey).String()
}
