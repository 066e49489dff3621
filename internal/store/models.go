package store

import "github.com/sadopc/moodr/internal/mood"

type Setting struct {
	Key   string
	Value string
}

// EntryFilter narrows ListEntries. Zero fields match everything; From and To
// are inclusive day keys.
type EntryFilter struct {
	From  string
	To    string
	Mood  mood.Kind
	Limit int
}
