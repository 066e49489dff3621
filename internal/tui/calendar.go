package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/store"
)

type calendarModel struct {
	store  *store.Store
	width  int
	height int

	entries []mood.Entry
	log     analytics.CompletionLog
	prefs   store.Preferences
	latest  map[string]mood.Entry

	month    time.Time // any day in the displayed month, at noon
	selected time.Time // the highlighted day, at noon
	today    string
}

func newCalendarModel(s *store.Store) calendarModel {
	now := datekey.Noon(time.Now())
	return calendarModel{
		store:    s,
		latest:   map[string]mood.Entry{},
		month:    now,
		selected: now,
		today:    datekey.Encode(now),
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.err != nil {
			return c, nil
		}
		c.entries = msg.entries
		c.log = msg.log
		c.prefs = msg.prefs
		c.latest = mood.LatestPerDay(msg.entries, time.Now())
		return c, nil

	case tickMsg:
		c.today = datekey.Encode(time.Time(msg))
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			c.moveSelection(-1)
		case key.Matches(msg, keys.Right):
			c.moveSelection(1)
		case key.Matches(msg, keys.Up):
			c.moveSelection(-7)
		case key.Matches(msg, keys.Down):
			c.moveSelection(7)
		case key.Matches(msg, keys.PrevPoint):
			c.shiftMonth(-1)
		case key.Matches(msg, keys.NextPoint):
			c.shiftMonth(1)
		case key.Matches(msg, keys.Today):
			now := datekey.Noon(time.Now())
			c.month, c.selected = now, now
		case key.Matches(msg, keys.Delete):
			return c, c.deleteLatest()
		}
	}
	return c, nil
}

// moveSelection steps the highlighted day; the displayed month follows it.
func (c *calendarModel) moveSelection(days int) {
	c.selected = datekey.AddDays(c.selected, days)
	if !datekey.SameMonth(c.selected, c.month) {
		c.month = c.selected
	}
}

// shiftMonth moves to another month and selects its first day.
func (c *calendarModel) shiftMonth(n int) {
	c.month = datekey.AddMonths(c.month, n)
	c.selected = datekey.StartOfMonth(c.month)
}

func (c calendarModel) selectedKey() string {
	return datekey.Encode(c.selected)
}

// deleteLatest removes the newest entry on the selected day.
func (c calendarModel) deleteLatest() tea.Cmd {
	day := mood.ForDay(c.entries, c.selectedKey(), time.Now())
	if len(day) == 0 {
		return nil
	}
	id := day[0].ID
	s := c.store
	return func() tea.Msg {
		if err := s.DeleteEntry(id); err != nil {
			return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
		}
		return entryDeletedMsg{id: id}
	}
}

func (c calendarModel) view() string {
	w := c.width - 4

	title := titleStyle.Render(c.month.Format("January 2006"))
	grid := c.renderGrid()
	details := c.renderDetails()
	nav := mutedStyle.Render("  arrows: move  [/]: month  t: today  x: delete entry")

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", grid, "", details, "", nav)
	return panelStyle.Width(w).Render(body)
}

func (c calendarModel) renderGrid() string {
	var header []string
	for _, l := range mood.WeekdayLabels {
		header = append(header, cellStyle.Foreground(colorMuted).Render(l))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	cells := mood.MonthGrid(c.month, c.latest)
	sel := c.selectedKey()
	for i := 0; i < len(cells); i += 7 {
		var row []string
		for _, cell := range cells[i:min(i+7, len(cells))] {
			row = append(row, c.renderCell(cell, sel))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (c calendarModel) renderCell(cell mood.Cell, sel string) string {
	icon := "·"
	if cell.Entry != nil {
		icon = cell.Entry.MoodID.Icon()
	}
	marker := " "
	if c.log.Has(cell.Key) {
		marker = "•"
	}
	text := fmt.Sprintf("%2d%s%s", cell.Date.Day(), icon, marker)

	switch {
	case cell.Key == sel:
		return selectedCellStyle.Render(text)
	case !cell.InMonth:
		return outsideCellStyle.Render(text)
	case cell.Key == c.today:
		return todayCellStyle.Render(text)
	}
	return cellStyle.Render(text)
}

func (c calendarModel) renderDetails() string {
	key := c.selectedKey()
	day := mood.ForDay(c.entries, key, time.Now())

	heading := titleStyle.Render(c.selected.Format("Mon, Jan 2"))
	if key == c.today {
		heading += " " + highlightStyle.Render("(today)")
	}
	lines := []string{heading}

	if text, ok := c.log.DayText(key); ok {
		lines = append(lines, "  Suggestions: "+successStyle.Render(text))
	}

	if len(day) == 0 {
		lines = append(lines, mutedStyle.Render("  No check-ins"))
		return strings.Join(lines, "\n")
	}

	unit := tempUnit(c.prefs)
	now := time.Now()
	for _, e := range day {
		score := e.MoodID.Score()
		line := fmt.Sprintf("  %s %s  %s",
			moodStyle(score).Render(mood.IconForScore(score)),
			mood.Options[score-1].Slogan,
			mutedStyle.Render(e.Time(now).Local().Format("15:04")),
		)
		lines = append(lines, line)
		if e.Weather != nil {
			lines = append(lines, fmt.Sprintf("    %s %s", e.Weather.Summary(), mood.FormatTemp(e.Weather.TempC, unit)))
		}
		if e.Note != "" {
			lines = append(lines, "    "+e.Note)
		}
		if e.ImageRef != "" {
			lines = append(lines, mutedStyle.Render("    photo: "+e.ImageRef))
		}
	}
	return strings.Join(lines, "\n")
}
