package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/export"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/prefs"
	"github.com/sadopc/moodr/internal/store"
)

var exportFormats = []string{"CSV", "JSON", "Backup"}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	disclaimer    bool

	calendar calendarModel
	trend    trendModel
	checkin  checkinModel
	settings settingsModel

	revision   int
	loaded     bool
	systemDark bool
	today      string

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *store.Store) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		activeView: viewCalendar,
		calendar:   newCalendarModel(s),
		trend:      newTrendModel(),
		checkin:    newCheckinModel(s),
		settings:   newSettingsModel(s),
		systemDark: lipgloss.HasDarkBackground(),
		today:      datekey.Today(),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadJournal(a.store),
		tickCmd(),
	)
}

// tickCmd wakes the app once a minute so views follow the day rollover.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) reload() tea.Cmd {
	return loadJournal(a.store)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.calendar.setSize(a.width, contentHeight)
		a.trend.setSize(a.width, contentHeight)
		a.checkin.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.MouseMsg:
		if a.activeView != viewTrend || a.exportPicking || a.disclaimer {
			return a, nil
		}
		msg.Y -= lipgloss.Height(a.renderHeader())
		a.trend, _ = a.trend.update(msg)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// The disclaimer blocks every view but Settings.
		if a.disclaimerShown() {
			return a.updateDisclaimer(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Gentle):
			return a, a.toggleGentle()
		case key.Matches(msg, keys.New):
			if a.activeView != viewSettings {
				a.activeView = viewCheckin
			}
			return a.updateActiveView(msg)
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewCalendar
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewTrend
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewCheckin
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, nil
		}

	case journalLoadedMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("Load error: %v", msg.err)
			a.statusErr = true
			return a, nil
		}
		if msg.revision < a.revision {
			// Superseded by a load issued later.
			return a, nil
		}
		a.revision = msg.revision
		if !a.loaded {
			prefs.ApplyTheme(msg.prefs.Theme, a.systemDark)
			a.disclaimer = !msg.prefs.DisclaimerAck
			a.loaded = true
		}
		return a.broadcast(msg)

	case tickMsg:
		cmds = append(cmds, tickCmd())
		if day := datekey.Encode(time.Time(msg)); day != a.today {
			a.today = day
			a.calendar, _ = a.calendar.update(msg)
			cmds = append(cmds, a.reload())
		}
		return a, tea.Batch(cmds...)

	case entrySavedMsg:
		a.status = "Saved. " + msg.encouragement
		a.statusErr = false
		a.checkin, _ = a.checkin.update(msg)
		return a, a.reload()

	case entryDeletedMsg:
		a.status = "Entry deleted"
		a.statusErr = false
		return a, a.reload()

	case gentleToggledMsg:
		if msg.done {
			a.status = "Gentle action done for " + msg.day
		} else {
			a.status = "Gentle action cleared for " + msg.day
		}
		a.statusErr = false
		return a, a.reload()

	case prefsSavedMsg:
		a.status = "Settings saved"
		a.statusErr = false
		prefs.ApplyTheme(msg.prefs.Theme, a.systemDark)
		return a.broadcast(msg)

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case disclaimerAckedMsg:
		a.disclaimer = false
		a.status = "You can review the disclaimer anytime in Settings"
		a.statusErr = false
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

// broadcast hands a data message to every view, not just the active one.
func (a App) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.calendar, cmd = a.calendar.update(msg)
	cmds = append(cmds, cmd)
	a.trend, cmd = a.trend.update(msg)
	cmds = append(cmds, cmd)
	a.checkin, cmd = a.checkin.update(msg)
	cmds = append(cmds, cmd)
	a.settings, cmd = a.settings.update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewTrend:
		a.trend, cmd = a.trend.update(msg)
	case viewCheckin:
		a.checkin, cmd = a.checkin.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewCheckin:
		return a.checkin.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

// toggleGentle flips today's gentle action.
func (a App) toggleGentle() tea.Cmd {
	s := a.store
	return func() tea.Msg {
		day := datekey.Today()
		done, err := s.ToggleGentle(day)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Gentle action error: %v", err), isError: true}
		}
		return gentleToggledMsg{day: day, done: done}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewCalendar:
		content = a.calendar.view()
	case viewTrend:
		content = a.trend.view()
	case viewCheckin:
		content = a.checkin.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker()
	} else if a.disclaimerShown() {
		content = a.renderDisclaimer()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("moodr")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
		if a.statusErr {
			status = errorStyle.Render(" " + a.status)
		}
	}

	left := footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) disclaimerShown() bool {
	return a.disclaimer && a.activeView != viewSettings
}

func (a App) renderDisclaimer() string {
	rows := []string{
		titleStyle.Render("Disclaimer"),
		"",
		mood.Disclaimer,
		"",
		mutedStyle.Render("  enter: I understand  esc: later  4: settings  q: quit"),
	}
	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// updateDisclaimer handles keys while the disclaimer is up. Only enter
// persists the acknowledgement; esc hides it until the next start.
func (a App) updateDisclaimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		s := a.store
		return a, func() tea.Msg {
			if err := s.AcknowledgeDisclaimer(); err != nil {
				return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
			}
			return disclaimerAckedMsg{}
		}
	case key.Matches(msg, keys.Back):
		a.disclaimer = false
	case key.Matches(msg, keys.Tab4):
		a.activeView = viewSettings
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		home, _ := os.UserHomeDir()
		return a, doExport(a.store, a.exportCursor, home)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport writes the whole journal into dir in the chosen format.
func doExport(s *store.Store, format int, dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := s.ListEntries(store.EntryFilter{})
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		dateStr := time.Now().Format("2006-01-02")

		var path string
		switch format {
		case 0:
			path = filepath.Join(dir, fmt.Sprintf("moodr-export-%s.csv", dateStr))
			if err := export.ToCSV(entries, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		case 1:
			path = filepath.Join(dir, fmt.Sprintf("moodr-export-%s.json", dateStr))
			if err := export.ToJSON(entries, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		default:
			log, err := s.CompletionLog()
			if err != nil {
				return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
			}
			path = filepath.Join(dir, fmt.Sprintf("moodr-backup-%s.json", dateStr))
			if err := export.ToBackup(entries, log, path); err != nil {
				return statusMsg{text: fmt.Sprintf("Backup error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
