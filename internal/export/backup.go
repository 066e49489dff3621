package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/mood"
)

// Keys of a backup document. They match the browser storage keys the
// journal has always used, so backups move between the two unchanged.
const (
	KeyEntries       = "moodEntries"
	KeyGentleHistory = "moodbuddy.gentleActions.history.v1"
	KeyGentleStats   = "moodbuddy.gentleActions.completionStats.v1"
)

// Backup is everything the journal stores.
type Backup struct {
	Entries []mood.Entry
	Log     analytics.CompletionLog
}

// WriteBackup writes entries and the gentle-action log as one JSON object.
func WriteBackup(w io.Writer, entries []mood.Entry, log analytics.CompletionLog) error {
	if entries == nil {
		entries = []mood.Entry{}
	}
	days := log.Days
	if days == nil {
		days = []string{}
	}
	stats := log.Stats
	if stats == nil {
		stats = map[string]analytics.DayStat{}
	}

	doc := map[string]any{
		KeyEntries:       entries,
		KeyGentleHistory: days,
		KeyGentleStats:   stats,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ToBackup writes a backup document to path.
func ToBackup(entries []mood.Entry, log analytics.CompletionLog, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()

	if err := WriteBackup(f, entries, log); err != nil {
		return err
	}
	return f.Close()
}

// ReadBackup decodes a backup document. Each key is read independently and
// tolerantly: a missing or malformed key yields an empty collection without
// affecting the others. A key may hold the JSON value directly or, as
// browser storage does, a string containing it.
func ReadBackup(data []byte) Backup {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		doc = map[string]json.RawMessage{}
	}
	return Backup{
		Entries: mood.ParseEntries(unwrap(doc[KeyEntries])),
		Log: analytics.CompletionLog{
			Days:  analytics.ParseCompletionDays(unwrap(doc[KeyGentleHistory])),
			Stats: analytics.ParseCompletionStats(unwrap(doc[KeyGentleStats])),
		},
	}
}

// unwrap returns the JSON held inside a string value, or raw unchanged.
func unwrap(raw json.RawMessage) []byte {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s)
	}
	return raw
}
