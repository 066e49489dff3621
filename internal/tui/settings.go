package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/prefs"
	"github.com/sadopc/moodr/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	prefs      store.Preferences
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	theme       *string
	tempUnit    *string
	trendWindow *string
}

func newSettingsModel(s *store.Store) settingsModel {
	th, tu, tw := "", "", ""
	return settingsModel{
		store:       s,
		prefs:       store.Preferences{Theme: prefs.ThemeSystem, TempUnit: prefs.UnitAuto},
		theme:       &th,
		tempUnit:    &tu,
		trendWindow: &tw,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.err == nil {
			s.prefs = msg.prefs
		}
		return s, nil

	case prefsSavedMsg:
		s.prefs = msg.prefs
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.theme = s.prefs.Theme
	*s.tempUnit = s.prefs.TempUnit
	*s.trendWindow = s.prefs.TrendWindow.String()

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("System", prefs.ThemeSystem),
					huh.NewOption("Light", prefs.ThemeLight),
					huh.NewOption("Dark", prefs.ThemeDark),
				).Value(s.theme),
			huh.NewSelect[string]().Title("Temperature unit").
				Options(
					huh.NewOption("Auto (from locale)", prefs.UnitAuto),
					huh.NewOption("Celsius", prefs.UnitCelsius),
					huh.NewOption("Fahrenheit", prefs.UnitFahrenheit),
				).Value(s.tempUnit),
			huh.NewSelect[string]().Title("Default trend window").
				Options(
					huh.NewOption("Weekly", analytics.Weekly.String()),
					huh.NewOption("Monthly", analytics.Monthly.String()),
				).Value(s.trendWindow),
		).Title("Preferences"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.save()
	}

	return s, cmd
}

func (s settingsModel) save() tea.Cmd {
	window, _ := analytics.ParseWindow(*s.trendWindow)
	p := store.Preferences{Theme: *s.theme, TempUnit: *s.tempUnit, TrendWindow: window}
	st := s.store
	return func() tea.Msg {
		if err := st.SavePreferences(p); err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		return prefsSavedMsg{prefs: p}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	locale := prefs.LocaleFromEnv()
	unit := s.prefs.TempUnit
	if unit == prefs.UnitAuto {
		unit = fmt.Sprintf("auto (%s for %s)", prefs.ResolveTempUnit(unit, locale), prefs.Region(locale))
	}

	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(24).Render(label), highlightStyle.Render(value))
	}

	rows := []string{
		title,
		"",
		row("Theme", s.prefs.Theme),
		row("Temperature unit", unit),
		row("Default trend window", s.prefs.TrendWindow.String()),
		"",
		mutedStyle.Render("Press enter to edit settings"),
		"",
		accentStyle.Render("Disclaimer"),
		mutedStyle.Render(mood.Disclaimer),
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
