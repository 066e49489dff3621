package mood

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/sadopc/moodr/internal/datekey"
)

// Weather is the snapshot attached to a check-in. Temperatures are kept in
// Celsius so stored values stay comparable whatever unit is displayed.
type Weather struct {
	TempC float64 `json:"tempC"`
	Code  int     `json:"code"`
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
	City  string  `json:"city,omitempty"`
}

// Entry is one check-in.
type Entry struct {
	ID        string   `json:"id"`
	MoodID    Kind     `json:"moodId"`
	MoodScore *float64 `json:"moodScore,omitempty"`
	Note      string   `json:"note"`
	DateKey   string   `json:"dateKey"`
	Timestamp string   `json:"timestamp"`
	ImageRef  string   `json:"imageDataUrl,omitempty"`
	Weather   *Weather `json:"weather,omitempty"`
}

// Score returns the explicit score if set, otherwise the kind's score.
// An explicit score is returned unclamped.
func (e Entry) Score() float64 {
	if e.MoodScore != nil {
		return *e.MoodScore
	}
	return float64(e.MoodID.Score())
}

// Time parses the entry timestamp, falling back to now.
func (e Entry) Time(now time.Time) time.Time {
	return SafeTime(e.Timestamp, now)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// SafeTime parses an ISO-8601 timestamp. Layouts without a zone are read as
// local time. Anything unparseable yields now.
func SafeTime(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}
	return now
}

// NewEntry builds an entry captured at the given instant. The day key comes
// from the local wall clock so late-night check-ins land on the day the user
// experienced.
func NewEntry(id string, kind Kind, note string, at time.Time) Entry {
	return Entry{
		ID:        id,
		MoodID:    kind,
		Note:      note,
		DateKey:   datekey.Encode(at.Local()),
		Timestamp: at.UTC().Format(time.RFC3339Nano),
	}
}

// ParseEntries decodes a stored JSON array of entries. Malformed input or a
// non-array yields an empty slice. Elements that are not objects or have no
// date key are skipped; a field with the wrong type is dropped on its own.
func ParseEntries(data []byte) []Entry {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Entry{}
	}
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		if e, ok := parseEntry(r); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func parseEntry(data json.RawMessage) (Entry, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return Entry{}, false
	}

	var e Entry
	decodeField(fields, "id", &e.ID)
	decodeField(fields, "moodId", &e.MoodID)
	decodeField(fields, "note", &e.Note)
	decodeField(fields, "dateKey", &e.DateKey)
	decodeField(fields, "timestamp", &e.Timestamp)
	decodeField(fields, "imageDataUrl", &e.ImageRef)

	var score float64
	if decodeField(fields, "moodScore", &score) {
		e.MoodScore = &score
	}
	var w Weather
	if decodeField(fields, "weather", &w) {
		e.Weather = &w
	}

	if e.DateKey == "" {
		return Entry{}, false
	}
	return e, true
}

// decodeField unmarshals fields[name] into dst and reports success. A JSON
// null counts as absent.
func decodeField(fields map[string]json.RawMessage, name string, dst any) bool {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// LatestPerDay returns the most recent entry for each day key. Entries with
// equal timestamps keep the one seen first.
func LatestPerDay(entries []Entry, now time.Time) map[string]Entry {
	latest := make(map[string]Entry, len(entries))
	for _, e := range entries {
		prev, ok := latest[e.DateKey]
		if !ok || e.Time(now).After(prev.Time(now)) {
			latest[e.DateKey] = e
		}
	}
	return latest
}

// ForDay returns the entries recorded on key, newest first.
func ForDay(entries []Entry, key string, now time.Time) []Entry {
	var day []Entry
	for _, e := range entries {
		if e.DateKey == key {
			day = append(day, e)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Time(now).After(day[j].Time(now))
	})
	return day
}

// SortChronological orders entries oldest first by timestamp.
func SortChronological(entries []Entry, now time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time(now).Before(entries[j].Time(now))
	})
}
