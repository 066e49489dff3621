package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/chart"
	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
)

// Offsets of the bar chart inside the rendered trend panel. Left: border and
// padding. Top: border, padding, the two-row tabbed header, a blank line and
// the tooltip row.
const (
	chartLeft = 3
	chartTop  = 6
)

type trendModel struct {
	width  int
	height int

	entries  []mood.Entry
	log      analytics.CompletionLog
	revision int
	loaded   bool

	window analytics.Window
	anchor time.Time

	cache       analytics.SeriesCache
	series      []analytics.Point
	summary     analytics.Summary
	plot        analytics.Plot
	interaction chart.Interaction

	chart       barchart.Model
	chartWidth  int
	chartHeight int
}

func newTrendModel() trendModel {
	return trendModel{
		anchor:      datekey.Noon(time.Now()),
		chart:       barchart.New(40, 10),
		chartWidth:  40,
		chartHeight: 10,
	}
}

func (t *trendModel) setSize(w, h int) {
	t.width = w
	t.height = h
	t.rebuild()
}

func (t trendModel) update(msg tea.Msg) (trendModel, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.err != nil {
			return t, nil
		}
		t.entries = msg.entries
		t.log = msg.log
		t.revision = msg.revision
		t.cache.Invalidate()
		if !t.loaded {
			t.window = msg.prefs.TrendWindow
			t.loaded = true
		}
		t.rebuild()
		return t, nil

	case prefsSavedMsg:
		t.setWindow(msg.prefs.TrendWindow)
		return t, nil

	case tea.MouseMsg:
		t.handleMouse(msg)
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			t.shiftPeriod(-1)
		case key.Matches(msg, keys.Right):
			if !t.isCurrentPeriod() {
				t.shiftPeriod(1)
			}
		case key.Matches(msg, keys.Window):
			if t.window == analytics.Weekly {
				t.setWindow(analytics.Monthly)
			} else {
				t.setWindow(analytics.Weekly)
			}
		case key.Matches(msg, keys.Today):
			t.anchor = datekey.Noon(time.Now())
			t.interaction.Reset()
			t.rebuild()
		case key.Matches(msg, keys.PrevPoint):
			t.stepCursor(-1)
		case key.Matches(msg, keys.NextPoint):
			t.stepCursor(1)
		case key.Matches(msg, keys.Enter):
			t.interaction.Click()
			t.drawChart()
		case key.Matches(msg, keys.Back):
			t.interaction.Reset()
			t.drawChart()
		}
	}
	return t, nil
}

// setWindow switches the window and jumps back to the current period.
func (t *trendModel) setWindow(w analytics.Window) {
	t.window = w
	t.anchor = datekey.Noon(time.Now())
	t.interaction.Reset()
	t.rebuild()
}

func (t *trendModel) shiftPeriod(n int) {
	if t.window == analytics.Monthly {
		t.anchor = datekey.AddMonths(t.anchor, n)
	} else {
		t.anchor = datekey.AddDays(t.anchor, 7*n)
	}
	t.interaction.Reset()
	t.rebuild()
}

// isCurrentPeriod reports whether the displayed window contains today.
func (t trendModel) isCurrentPeriod() bool {
	_, end := analytics.Bounds(t.window, t.anchor)
	return datekey.Encode(end) >= datekey.Today()
}

// stepCursor moves the keyboard hover one point. Locked charts ignore it.
func (t *trendModel) stepCursor(delta int) {
	n := len(t.series)
	if n == 0 {
		return
	}
	i, ok := t.interaction.Active()
	if !ok {
		i = n - 1
		if delta > 0 {
			i = 0
		}
	} else {
		i += delta
	}
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	t.interaction.Move(i)
	t.drawChart()
}

// geometry maps terminal columns on the chart onto bar indices. Padding of
// half a slot puts every bar center on a pick point.
func (t trendModel) geometry() chart.Geometry {
	n := len(t.series)
	w := float64(t.chartWidth)
	pad := 0.0
	if n > 0 {
		pad = w / float64(n) / 2
	}
	return chart.Geometry{Width: w, Height: float64(t.chartHeight), PadX: pad, N: n}
}

func (t *trendModel) handleMouse(msg tea.MouseMsg) {
	x := msg.X - chartLeft
	y := msg.Y - chartTop
	inside := x >= 0 && x < t.chartWidth && y >= 0 && y < t.chartHeight

	switch msg.Action {
	case tea.MouseActionMotion:
		if !inside {
			t.interaction.Leave()
			break
		}
		if i, ok := t.geometry().Pick(float64(x)); ok {
			t.interaction.Move(i)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		if i, ok := t.geometry().Pick(float64(x)); ok {
			t.interaction.Move(i)
			t.interaction.Click()
		}
	default:
		return
	}
	t.drawChart()
}

// rebuild recomputes the series for the current inputs and redraws.
func (t *trendModel) rebuild() {
	t.series, t.summary = t.cache.Build(t.entries, t.revision, t.window, t.anchor)
	t.plot = analytics.Fill(t.series)
	if i, ok := t.interaction.Active(); ok && i >= len(t.series) {
		t.interaction.Reset()
	}
	t.drawChart()
}

func (t *trendModel) drawChart() {
	t.chartWidth = t.width - 8
	if t.chartWidth < 20 {
		t.chartWidth = 20
	}
	t.chartHeight = 10
	if t.height > 30 {
		t.chartHeight = 14
	}

	// Bars share the fixed 1-5 mood scale rather than the tallest bar.
	t.chart = barchart.New(t.chartWidth, t.chartHeight, barchart.WithNoAutoMaxValue(), barchart.WithMaxValue(5))

	active, hasActive := t.interaction.Active()
	var bars []barchart.BarData
	for i, p := range t.series {
		label := p.DateKey[8:10]
		if d, ok := datekey.Decode(p.DateKey); ok && t.window == analytics.Weekly {
			label = d.Format("Mon")
		}

		v := t.plot.Values[i]
		value := barchart.BarValue{Name: p.DateKey, Style: lipgloss.NewStyle().Foreground(colorSubtle)}
		if v != nil {
			value.Value = *v
			switch {
			case hasActive && i == active:
				value.Style = lipgloss.NewStyle().Foreground(colorHighlight)
			case t.plot.IsMarker(i):
				value.Style = moodStyle(mood.RoundScore(*v))
			default:
				value.Style = lipgloss.NewStyle().Foreground(colorMuted)
			}
		}
		bars = append(bars, barchart.BarData{Label: label, Values: []barchart.BarValue{value}})
	}

	t.chart.PushAll(bars)
	t.chart.Draw()
}

func (t trendModel) view() string {
	w := t.width - 4

	weeklyTab := inactiveTabStyle.Render("Weekly")
	monthlyTab := inactiveTabStyle.Render("Monthly")
	if t.window == analytics.Weekly {
		weeklyTab = activeTabStyle.Render("Weekly")
	} else {
		monthlyTab = activeTabStyle.Render("Monthly")
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, weeklyTab, monthlyTab)

	start, end := analytics.Bounds(t.window, t.anchor)
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Trend"), "  ", modeTabs, "  ", dateLabel,
	)

	nav := "  ←: previous  "
	if !t.isCurrentPeriod() {
		nav += "→: next  "
	}
	nav += "w: week/month  [/]: inspect  enter: lock  esc: clear"

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", t.renderTooltip(), t.chart.View(), "", t.renderSummary(), "", mutedStyle.Render(nav),
		),
	)
}

// renderTooltip draws the label of the active day above its bar.
func (t trendModel) renderTooltip() string {
	i, ok := t.interaction.Active()
	if !ok || i >= len(t.series) {
		return mutedStyle.Render("hover or use [ ] to inspect a day")
	}
	p := t.series[i]
	label := " " + chart.Label(p.DateKey, p.Value) + " "
	if t.interaction.State() == chart.Locked {
		label += "🔒 "
	}

	tip := chart.Tooltip{
		Width:  float64(lipgloss.Width(label)),
		Offset: float64(lipgloss.Width(label)) / 2,
	}
	left := int(tip.Place(t.geometry().X(i), float64(t.chartWidth)))
	return strings.Repeat(" ", max(0, left)) + tooltipStyle.Render(label)
}

func (t trendModel) renderSummary() string {
	s := t.summary
	today := datekey.Today()
	streak := analytics.ComputeStreak(t.log.Days, today)

	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(14).Render(label), value)
	}

	rows := []string{
		row("Tracked", fmt.Sprintf("%d/%d days", s.TrackedDays, s.TotalDays)),
		row("Avg", mood.IconForValue(s.Avg)+" "+highlightStyle.Render(formatScore(s.Avg))),
		row("Most", s.TopMoodIcon()),
		row("Last", highlightStyle.Render(formatScore(s.Last))),
		row("Most common", highlightStyle.Render(formatTopScore(s.TopMoodScore))),
		"",
		"  " + analytics.TrendOneLiner(t.log.Days, today),
		"  " + accentStyle.Render("🔥 "+strconv.Itoa(streak)) + mutedStyle.Render(" day streak"),
	}
	return strings.Join(rows, "\n")
}
