package tui

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/prefs"
	"github.com/sadopc/moodr/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCalendar viewState = iota
	viewTrend
	viewCheckin
	viewSettings
)

var viewNames = []string{"Calendar", "Trend", "Check-in", "Settings"}

// --- Messages ---

// journalLoadedMsg carries a fresh snapshot of everything the views render.
type journalLoadedMsg struct {
	entries  []mood.Entry
	log      analytics.CompletionLog
	prefs    store.Preferences
	revision int
	err      error
}

type entrySavedMsg struct {
	entry         mood.Entry
	encouragement string
}

type prefsSavedMsg struct {
	prefs store.Preferences
}

type entryDeletedMsg struct {
	id string
}

type gentleToggledMsg struct {
	day  string
	done bool
}

type statusMsg struct {
	text    string
	isError bool
}

type disclaimerAckedMsg struct{}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// journalRevision numbers journal loads in the order they are issued.
var journalRevision atomic.Int64

// loadJournal reads entries, the completion log and preferences in one go.
// Every call is stamped with a new revision, so loads in flight at the same
// time never share one.
func loadJournal(s *store.Store) tea.Cmd {
	revision := int(journalRevision.Add(1))
	return func() tea.Msg {
		msg := journalLoadedMsg{revision: revision}
		if msg.entries, msg.err = s.ListEntries(store.EntryFilter{}); msg.err != nil {
			return msg
		}
		if msg.log, msg.err = s.CompletionLog(); msg.err != nil {
			return msg
		}
		msg.prefs, msg.err = s.LoadPreferences()
		return msg
	}
}

// --- Helpers ---

func formatScore(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f/5", *v)
}

func formatTopScore(v *int) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%d/5", *v)
}

func tempUnit(p store.Preferences) string {
	return prefs.ResolveTempUnit(p.TempUnit, prefs.LocaleFromEnv())
}
