package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/chart"
	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func load(t *testing.T, s *store.Store) journalLoadedMsg {
	t.Helper()
	msg, ok := loadJournal(s)().(journalLoadedMsg)
	if !ok {
		t.Fatal("loadJournal returned unexpected message")
	}
	if msg.err != nil {
		t.Fatalf("load journal: %v", msg.err)
	}
	return msg
}

func checkIn(t *testing.T, s *store.Store, kind mood.Kind, note string) mood.Entry {
	t.Helper()
	e, err := s.CreateEntry(mood.NewEntry("", kind, note, time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func newLoadedTrend(t *testing.T, s *store.Store) trendModel {
	t.Helper()
	tr := newTrendModel()
	tr.setSize(100, 30)
	tr, _ = tr.update(load(t, s))
	return tr
}

// ============================================================
// Common
// ============================================================

func TestViewNames(t *testing.T) {
	expected := []string{"Calendar", "Trend", "Check-in", "Settings"}
	if len(viewNames) != len(expected) {
		t.Fatalf("expected %d view names, got %d", len(expected), len(viewNames))
	}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewCalendar != 0 || viewTrend != 1 || viewCheckin != 2 || viewSettings != 3 {
		t.Fatal("view state constants out of order")
	}
}

func TestFormatScore(t *testing.T) {
	v := 3.75
	top := 4
	tests := []struct {
		got, want string
	}{
		{formatScore(nil), "--"},
		{formatScore(&v), "3.8/5"},
		{formatTopScore(nil), "--"},
		{formatTopScore(&top), "4/5"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestLoadJournal(t *testing.T) {
	s := newTestStore(t)
	checkIn(t, s, mood.Good, "coffee")
	s.MarkGentleDone(datekey.Today())

	msg := load(t, s)
	if len(msg.entries) != 1 || len(msg.log.Days) != 1 || msg.revision < 1 {
		t.Fatalf("unexpected snapshot %+v", msg)
	}
	if msg.prefs.TrendWindow != analytics.Weekly {
		t.Fatalf("default window = %v", msg.prefs.TrendWindow)
	}
}

// ============================================================
// Trend model
// ============================================================

func TestTrendWindowToggle(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)

	if tr.window != analytics.Weekly || len(tr.series) != 7 {
		t.Fatalf("expected weekly series of 7, got %v with %d", tr.window, len(tr.series))
	}

	tr, _ = tr.update(runes("w"))
	if tr.window != analytics.Monthly {
		t.Fatal("w should switch to monthly")
	}
	if want := datekey.DaysInMonth(time.Now()); len(tr.series) != want {
		t.Fatalf("monthly series has %d points, want %d", len(tr.series), want)
	}

	tr, _ = tr.update(runes("w"))
	if tr.window != analytics.Weekly || len(tr.series) != 7 {
		t.Fatal("w should switch back to weekly")
	}
}

func TestTrendWindowFromPreferences(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePreferences(store.Preferences{Theme: "system", TempUnit: "auto", TrendWindow: analytics.Monthly}); err != nil {
		t.Fatal(err)
	}
	tr := newLoadedTrend(t, s)
	if tr.window != analytics.Monthly {
		t.Fatal("stored trend window should be the initial window")
	}

	// Reloads keep the window the user picked.
	tr, _ = tr.update(runes("w"))
	tr, _ = tr.update(load(t, s))
	if tr.window != analytics.Weekly {
		t.Fatal("reload should not reset the window")
	}
}

func TestTrendPeriodNavigation(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)
	start := datekey.Encode(tr.anchor)

	if !tr.isCurrentPeriod() {
		t.Fatal("initial period should contain today")
	}

	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyRight})
	if datekey.Encode(tr.anchor) != start {
		t.Fatal("next should be disabled on the current period")
	}

	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := datekey.Encode(tr.anchor); got != datekey.AddDaysKey(start, -7) {
		t.Fatalf("previous week anchor = %s", got)
	}
	if tr.isCurrentPeriod() {
		t.Fatal("previous week should not be current")
	}

	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyRight})
	if datekey.Encode(tr.anchor) != start {
		t.Fatal("next should return to the current week")
	}
}

func TestTrendWindowToggleResetsAnchor(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)
	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyLeft})
	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyLeft})

	tr, _ = tr.update(runes("w"))
	if datekey.Encode(tr.anchor) != datekey.Today() {
		t.Fatalf("toggle should reset anchor to today, got %s", datekey.Encode(tr.anchor))
	}
}

func TestTrendKeyboardCursor(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)

	tr, _ = tr.update(runes("]"))
	if i, ok := tr.interaction.Active(); !ok || i != 0 {
		t.Fatalf("first ] should hover index 0, got %d %v", i, ok)
	}
	tr, _ = tr.update(runes("]"))
	tr, _ = tr.update(runes("]"))
	if i, _ := tr.interaction.Active(); i != 2 {
		t.Fatalf("active = %d, want 2", i)
	}
	tr, _ = tr.update(runes("["))
	if i, _ := tr.interaction.Active(); i != 1 {
		t.Fatalf("active = %d, want 1", i)
	}

	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyEnter})
	if tr.interaction.State() != chart.Locked {
		t.Fatal("enter should lock the hovered day")
	}
	tr, _ = tr.update(runes("]"))
	if i, _ := tr.interaction.Active(); i != 1 {
		t.Fatal("lock should survive cursor movement")
	}

	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyEnter})
	if tr.interaction.State() != chart.Idle {
		t.Fatalf("enter on the locked day should unlock, got %v", tr.interaction.State())
	}

	tr, _ = tr.update(runes("["))
	if i, _ := tr.interaction.Active(); i != 6 {
		t.Fatalf("first [ should hover the last day, got %d", i)
	}
	tr, _ = tr.update(tea.KeyMsg{Type: tea.KeyEsc})
	if tr.interaction.State() != chart.Idle {
		t.Fatal("esc should clear the inspection")
	}
}

func TestTrendCursorClamps(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)
	for range 10 {
		tr, _ = tr.update(runes("]"))
	}
	if i, _ := tr.interaction.Active(); i != 6 {
		t.Fatalf("cursor should clamp at 6, got %d", i)
	}
}

func TestTrendMouse(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)

	motion := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
	}

	tr, _ = tr.update(motion(chartLeft, chartTop))
	if i, ok := tr.interaction.Active(); !ok || i != 0 {
		t.Fatalf("left edge should hover 0, got %d %v", i, ok)
	}

	tr, _ = tr.update(motion(chartLeft+tr.chartWidth-1, chartTop+1))
	if i, _ := tr.interaction.Active(); i != 6 {
		t.Fatalf("right edge should hover 6, got %d", i)
	}

	tr, _ = tr.update(motion(chartLeft, 0))
	if tr.interaction.State() != chart.Idle {
		t.Fatal("leaving the chart should clear hover")
	}

	press := tea.MouseMsg{X: chartLeft + tr.chartWidth/2, Y: chartTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	tr, _ = tr.update(press)
	if tr.interaction.State() != chart.Locked {
		t.Fatal("click should lock")
	}
	if i, _ := tr.interaction.Active(); i != 3 {
		t.Fatalf("click at the center should lock 3, got %d", i)
	}

	tr, _ = tr.update(motion(chartLeft, chartTop))
	if i, _ := tr.interaction.Active(); i != 3 {
		t.Fatal("hover must not move a lock")
	}
	tr, _ = tr.update(motion(chartLeft, 0))
	if tr.interaction.State() != chart.Locked {
		t.Fatal("leaving must not clear a lock")
	}

	tr, _ = tr.update(press)
	if tr.interaction.State() != chart.Idle {
		t.Fatal("clicking the locked day should unlock")
	}
}

func TestTrendSummary(t *testing.T) {
	s := newTestStore(t)
	checkIn(t, s, mood.Bad, "")
	checkIn(t, s, mood.Great, "")
	tr := newLoadedTrend(t, s)

	if tr.summary.TrackedDays != 1 || tr.summary.TotalDays != 7 {
		t.Fatalf("unexpected summary %+v", tr.summary)
	}
	if tr.summary.Avg == nil || *tr.summary.Avg != 3.5 {
		t.Fatalf("avg = %v", tr.summary.Avg)
	}
	if len(tr.plot.Markers) != 1 {
		t.Fatalf("markers = %v", tr.plot.Markers)
	}

	out := tr.view()
	for _, want := range []string{"Trend", "Tracked", "1/7 days", "3.5/5", "Suggestions:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("trend view missing %q", want)
		}
	}
}

func TestTrendRevisionInvalidatesSeries(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)
	if tr.summary.TrackedDays != 0 {
		t.Fatal("expected empty week")
	}

	checkIn(t, s, mood.Good, "")
	msg := load(t, s)
	msg.revision = 2
	tr, _ = tr.update(msg)
	if tr.summary.TrackedDays != 1 {
		t.Fatal("new revision should rebuild the series")
	}
}

func TestLoadJournalRevisionsIncrease(t *testing.T) {
	s := newTestStore(t)
	first := loadJournal(s)
	second := loadJournal(s)

	a := second().(journalLoadedMsg)
	b := first().(journalLoadedMsg)
	if a.revision <= b.revision {
		t.Fatalf("revisions %d then %d should increase in issue order", b.revision, a.revision)
	}
}

func TestTrendSameRevisionReloadRebuilds(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)

	checkIn(t, s, mood.Great, "")
	msg := load(t, s)
	tr, _ = tr.update(msg)

	checkIn(t, s, mood.VeryBad, "")
	next := load(t, s)
	next.revision = msg.revision
	tr, _ = tr.update(next)

	if len(tr.entries) != 2 {
		t.Fatalf("entries = %d", len(tr.entries))
	}
	if tr.summary.Avg == nil || *tr.summary.Avg != 3 {
		t.Fatalf("avg = %v, want 3", tr.summary.Avg)
	}
}

func TestAppThemeFollowsSettings(t *testing.T) {
	orig := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(orig) })

	app := NewApp(newTestStore(t))
	app.systemDark = false

	var model tea.Model = app
	model, _ = model.Update(prefsSavedMsg{prefs: store.Preferences{Theme: "dark", TempUnit: "auto"}})
	if !lipgloss.HasDarkBackground() {
		t.Fatal("dark theme not applied")
	}
	model.Update(prefsSavedMsg{prefs: store.Preferences{Theme: "system", TempUnit: "auto"}})
	if lipgloss.HasDarkBackground() {
		t.Fatal("system theme should follow the background detected at startup")
	}
}

func TestAppDropsSupersededLoad(t *testing.T) {
	s := newTestStore(t)
	stale := load(t, s)
	checkIn(t, s, mood.Good, "")
	fresh := load(t, s)

	var model tea.Model = NewApp(s)
	model, _ = model.Update(fresh)
	model, _ = model.Update(stale)
	app := model.(App)

	if app.revision != fresh.revision || len(app.trend.entries) != 1 {
		t.Fatalf("stale load replaced the newer snapshot (revision %d)", app.revision)
	}
}

func TestTrendChartUsesFixedScale(t *testing.T) {
	low := newTestStore(t)
	high := newTestStore(t)
	checkIn(t, low, mood.Bad, "")
	checkIn(t, high, mood.Great, "")

	lowChart := newLoadedTrend(t, low).chart
	highChart := newLoadedTrend(t, high).chart
	if lowChart.MaxValue() != 5 || highChart.MaxValue() != 5 {
		t.Fatalf("max values %v and %v, want 5", lowChart.MaxValue(), highChart.MaxValue())
	}
	if lowChart.View() == highChart.View() {
		t.Fatal("a bad day and a great day should not draw the same bar")
	}
}

func TestTrendTooltip(t *testing.T) {
	s := newTestStore(t)
	tr := newLoadedTrend(t, s)

	if !strings.Contains(tr.renderTooltip(), "inspect") {
		t.Fatal("idle tooltip should show the hint")
	}
	tr, _ = tr.update(runes("]"))
	want := datekey.FormatMMDD(tr.series[0].DateKey)
	if !strings.Contains(tr.renderTooltip(), want) {
		t.Fatalf("tooltip should contain %s", want)
	}
}

// ============================================================
// Calendar model
// ============================================================

func TestCalendarMonthNavigation(t *testing.T) {
	s := newTestStore(t)
	c := newCalendarModel(s)
	month := c.month

	c, _ = c.update(runes("["))
	if !datekey.SameMonth(c.month, datekey.AddMonths(month, -1)) {
		t.Fatalf("[ should show the previous month, got %s", c.month.Format("2006-01"))
	}
	if c.selected.Day() != 1 {
		t.Fatal("changing month should select its first day")
	}

	c, _ = c.update(runes("]"))
	c, _ = c.update(runes("]"))
	if !datekey.SameMonth(c.month, datekey.AddMonths(month, 1)) {
		t.Fatal("] should show the next month")
	}

	c, _ = c.update(runes("t"))
	if c.selectedKey() != datekey.Today() {
		t.Fatal("t should jump to today")
	}
}

func TestCalendarSelectionFollowsMonth(t *testing.T) {
	s := newTestStore(t)
	c := newCalendarModel(s)
	c.selected = datekey.StartOfMonth(c.month)
	first := c.selected

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyLeft})
	if !datekey.SameMonth(c.month, datekey.AddDays(first, -1)) {
		t.Fatal("moving before the 1st should show the previous month")
	}

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyDown})
	if c.selectedKey() != datekey.AddDaysKey(datekey.Encode(first), 6) {
		t.Fatalf("down should move a week, got %s", c.selectedKey())
	}
}

func TestCalendarDetails(t *testing.T) {
	s := newTestStore(t)
	e := mood.NewEntry("", mood.Good, "walked to the lake", time.Now())
	e.ImageRef = "lake.jpg"
	e.Weather = mood.NewWeather(20, 1, "Lisbon")
	if _, err := s.CreateEntry(e); err != nil {
		t.Fatal(err)
	}
	s.MarkGentleDone(datekey.Today())
	s.SetGentleStats(datekey.Today(), analytics.DayStat{Total: 3, Completed: 2})

	c := newCalendarModel(s)
	c.setSize(100, 40)
	c, _ = c.update(load(t, s))

	out := c.view()
	for _, want := range []string{"walked to the lake", "lake.jpg", "Lisbon", "2/3", "(today)", mood.Good.Icon()} {
		if !strings.Contains(out, want) {
			t.Fatalf("calendar view missing %q", want)
		}
	}
}

func TestCalendarShowsMoodIconNotScore(t *testing.T) {
	s := newTestStore(t)
	e := mood.NewEntry("", mood.Great, "", time.Now())
	low := 1.0
	e.MoodScore = &low
	if _, err := s.CreateEntry(e); err != nil {
		t.Fatal(err)
	}

	c := newCalendarModel(s)
	c.setSize(100, 40)
	c, _ = c.update(load(t, s))

	out := c.view()
	if !strings.Contains(out, mood.Great.Icon()) || strings.Contains(out, mood.VeryBad.Icon()) {
		t.Fatalf("calendar should show the mood's own icon:\n%s", out)
	}
}

func TestCalendarEmptyDay(t *testing.T) {
	s := newTestStore(t)
	c := newCalendarModel(s)
	c.setSize(100, 40)
	c, _ = c.update(load(t, s))
	if !strings.Contains(c.view(), "No check-ins") {
		t.Fatal("empty day should say so")
	}
	if _, cmd := c.update(runes("x")); cmd != nil {
		t.Fatal("delete on an empty day should do nothing")
	}
}

func TestCalendarDeleteLatest(t *testing.T) {
	s := newTestStore(t)
	checkIn(t, s, mood.Bad, "first")
	time.Sleep(2 * time.Millisecond)
	second := checkIn(t, s, mood.Great, "second")

	c := newCalendarModel(s)
	c, _ = c.update(load(t, s))

	_, cmd := c.update(runes("x"))
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	msg, ok := cmd().(entryDeletedMsg)
	if !ok || msg.id != second.ID {
		t.Fatalf("expected newest entry deleted, got %+v", msg)
	}

	left, _ := s.ListEntries(store.EntryFilter{})
	if len(left) != 1 || left[0].Note != "first" {
		t.Fatalf("unexpected remaining entries %+v", left)
	}
}

// ============================================================
// Check-in model
// ============================================================

func TestCheckinSave(t *testing.T) {
	s := newTestStore(t)
	c := newCheckinModel(s)
	*c.moodID = string(mood.Good)
	*c.note = "  sunny  "
	*c.image = " pic.png "

	msg, ok := c.save()().(entrySavedMsg)
	if !ok {
		t.Fatal("expected entrySavedMsg")
	}
	if msg.entry.MoodID != mood.Good || msg.entry.Note != "sunny" || msg.entry.ImageRef != "pic.png" {
		t.Fatalf("unexpected entry %+v", msg.entry)
	}
	if msg.entry.DateKey != datekey.Today() || msg.encouragement == "" {
		t.Fatalf("unexpected message %+v", msg)
	}

	c, _ = c.update(msg)
	if c.last == nil || !strings.Contains(c.view(), msg.encouragement) {
		t.Fatal("view should show the encouragement after saving")
	}
}

func TestCheckinSaveUnknownMood(t *testing.T) {
	s := newTestStore(t)
	c := newCheckinModel(s)
	*c.moodID = "ecstatic"

	msg, ok := c.save()().(statusMsg)
	if !ok || !msg.isError {
		t.Fatalf("expected error status, got %+v", msg)
	}
}

// ============================================================
// Settings model
// ============================================================

func TestSettingsSave(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)
	*m.theme = "dark"
	*m.tempUnit = "celsius"
	*m.trendWindow = "monthly"

	msg, ok := m.save()().(prefsSavedMsg)
	if !ok {
		t.Fatal("expected prefsSavedMsg")
	}
	p, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if p != msg.prefs || p.Theme != "dark" || p.TempUnit != "celsius" || p.TrendWindow != analytics.Monthly {
		t.Fatalf("unexpected preferences %+v", p)
	}

	m, _ = m.update(msg)
	if !strings.Contains(m.view(), "monthly") {
		t.Fatal("view should show the saved window")
	}
}

func TestSettingsViewAutoUnit(t *testing.T) {
	t.Setenv("LC_ALL", "en_GB.UTF-8")
	s := newTestStore(t)
	m := newSettingsModel(s)
	m.setSize(100, 40)
	if !strings.Contains(m.view(), "celsius for GB") {
		t.Fatal("auto unit should resolve from the locale")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if app.activeView != viewCalendar {
		t.Fatal("default view should be calendar")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
}

func TestAppIsFormActiveDefault(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppTabCycles(t *testing.T) {
	s := newTestStore(t)
	var model tea.Model = NewApp(s)

	want := []viewState{viewTrend, viewCheckin, viewSettings, viewCalendar}
	for _, v := range want {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
		if got := model.(App).activeView; got != v {
			t.Fatalf("active view = %d, want %d", got, v)
		}
	}

	model, _ = model.Update(runes("2"))
	if model.(App).activeView != viewTrend {
		t.Fatal("2 should select the trend view")
	}
}

func TestAppBroadcastsJournal(t *testing.T) {
	s := newTestStore(t)
	checkIn(t, s, mood.Okay, "")

	var model tea.Model = NewApp(s)
	msg := load(t, s)
	model, _ = model.Update(msg)
	app := model.(App)

	if app.revision != msg.revision {
		t.Fatalf("revision = %d, want %d", app.revision, msg.revision)
	}
	if len(app.calendar.entries) != 1 || len(app.trend.entries) != 1 {
		t.Fatal("journal should reach every view")
	}
}

func TestAppToggleGentle(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	msg, ok := app.toggleGentle()().(gentleToggledMsg)
	if !ok || !msg.done || msg.day != datekey.Today() {
		t.Fatalf("unexpected toggle result %+v", msg)
	}
	days, _ := s.ListGentleDays()
	if len(days) != 1 {
		t.Fatalf("expected today marked, got %v", days)
	}

	model, cmd := app.Update(msg)
	if cmd == nil {
		t.Fatal("toggle should reload the journal")
	}
	if !strings.Contains(model.(App).status, "done") {
		t.Fatal("status should report the toggle")
	}

	msg, _ = app.toggleGentle()().(gentleToggledMsg)
	if msg.done {
		t.Fatal("second toggle should clear")
	}
}

func TestAppMouseReachesTrend(t *testing.T) {
	s := newTestStore(t)
	s.AcknowledgeDisclaimer()
	var model tea.Model = NewApp(s)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 34})
	model, _ = model.Update(load(t, s))
	model, _ = model.Update(runes("2"))

	header := lipgloss.Height(model.(App).renderHeader())
	model, _ = model.Update(tea.MouseMsg{X: chartLeft, Y: header + chartTop, Action: tea.MouseActionMotion})
	if model.(App).trend.interaction.State() != chart.Hovering {
		t.Fatal("mouse motion over the chart should hover")
	}
}

func TestAppDisclaimerOnFirstRun(t *testing.T) {
	s := newTestStore(t)
	var model tea.Model = NewApp(s)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 34})
	model, _ = model.Update(load(t, s))

	if !strings.Contains(model.(App).View(), "not a medical") {
		t.Fatal("first run should show the disclaimer")
	}
	model, _ = model.Update(runes("2"))
	if model.(App).activeView != viewCalendar {
		t.Fatal("views should be blocked behind the disclaimer")
	}

	// Settings stays reachable and shows no gate.
	model, _ = model.Update(runes("4"))
	app := model.(App)
	if app.activeView != viewSettings || app.disclaimerShown() {
		t.Fatal("4 should open settings without the gate")
	}

	app.activeView = viewCalendar
	model, cmd := tea.Model(app).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should acknowledge")
	}
	model, _ = model.Update(cmd())
	if model.(App).disclaimerShown() {
		t.Fatal("disclaimer should close once acknowledged")
	}
	if ack, _ := s.DisclaimerAcknowledged(); !ack {
		t.Fatal("acknowledgement should be stored")
	}

	// A fresh start no longer shows it.
	var next tea.Model = NewApp(s)
	next, _ = next.Update(load(t, s))
	if next.(App).disclaimer {
		t.Fatal("acknowledged disclaimer should not come back")
	}
}

func TestAppDisclaimerDismissIsNotStored(t *testing.T) {
	s := newTestStore(t)
	var model tea.Model = NewApp(s)
	model, _ = model.Update(load(t, s))
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if model.(App).disclaimer {
		t.Fatal("esc should hide the disclaimer")
	}
	if ack, _ := s.DisclaimerAcknowledged(); ack {
		t.Fatal("esc must not store an acknowledgement")
	}
}

func TestAppExport(t *testing.T) {
	s := newTestStore(t)
	checkIn(t, s, mood.Good, "export me")
	dir := t.TempDir()

	for format := range exportFormats {
		msg, ok := doExport(s, format, dir)().(exportDoneMsg)
		if !ok {
			t.Fatalf("format %d: export failed", format)
		}
		data, err := os.ReadFile(msg.path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "export me") {
			t.Fatalf("format %d: note missing from %s", format, msg.path)
		}
	}
}

func TestAppExportPicker(t *testing.T) {
	s := newTestStore(t)
	var model tea.Model = NewApp(s)
	model, _ = model.Update(runes("e"))
	if !model.(App).exportPicking {
		t.Fatal("e should open the export picker")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := model.(App).exportCursor; got != len(exportFormats)-1 {
		t.Fatalf("cursor should clamp at %d, got %d", len(exportFormats)-1, got)
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.(App).exportPicking {
		t.Fatal("esc should close the picker")
	}
}

func TestAppViewStates(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	// Test all views render without panic
	views := []viewState{viewCalendar, viewTrend, viewCheckin, viewSettings}
	for _, v := range views {
		app.activeView = v
		output := app.View()
		if output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	// Width 0 means not yet sized
	output := app.View()
	if output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppStatusMessage(t *testing.T) {
	s := newTestStore(t)
	var model tea.Model = NewApp(s)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, _ = model.Update(statusMsg{text: "disk full", isError: true})

	app := model.(App)
	if !app.statusErr || !strings.Contains(app.renderFooter(), "disk full") {
		t.Fatal("footer should contain the error status")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	bindings := keys.ShortHelp()
	if len(bindings) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test: they render without panicking)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"accent", func() string { return accentStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
		{"cell", func() string { return cellStyle.Render("test") }},
		{"selectedCell", func() string { return selectedCellStyle.Render("test") }},
		{"tooltip", func() string { return tooltipStyle.Render("test") }},
		{"mood", func() string { return moodStyle(9).Render("test") }},
	}

	for _, s := range styles {
		result := s.fn()
		if result == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
