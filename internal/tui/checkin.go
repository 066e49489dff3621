package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/store"
)

type checkinModel struct {
	store  *store.Store
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	moodID *string
	note   *string
	image  *string

	last          *mood.Entry
	encouragement string
}

func newCheckinModel(s *store.Store) checkinModel {
	m, n, i := string(mood.Okay), "", ""
	return checkinModel{
		store:  s,
		moodID: &m,
		note:   &n,
		image:  &i,
	}
}

func (c *checkinModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c checkinModel) update(msg tea.Msg) (checkinModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case entrySavedMsg:
		e := msg.entry
		c.last = &e
		c.encouragement = msg.encouragement
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return c.showForm()
		}
	}
	return c, nil
}

func (c checkinModel) showForm() (checkinModel, tea.Cmd) {
	*c.moodID = string(mood.Okay)
	*c.note = ""
	*c.image = ""

	var options []huh.Option[string]
	for _, o := range mood.Options {
		options = append(options, huh.NewOption(o.Icon+"  "+o.Slogan, string(o.Kind)))
	}

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("How are you feeling?").
				Options(options...).
				Value(c.moodID),
			huh.NewText().Title("Note").
				Placeholder("What's on your mind?").
				CharLimit(500).
				Value(c.note),
			huh.NewInput().Title("Photo (path or URL, optional)").Value(c.image),
		).Title("Check in"),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c checkinModel) updateForm(msg tea.Msg) (checkinModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		return c, c.save()
	}

	return c, cmd
}

// save records the form as a new entry stamped now.
func (c checkinModel) save() tea.Cmd {
	kind := mood.Kind(*c.moodID)
	note := *c.note
	image := strings.TrimSpace(*c.image)
	s := c.store
	return func() tea.Msg {
		e := mood.NewEntry("", kind, note, time.Now())
		e.ImageRef = image
		saved, err := s.CreateEntry(e)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Check-in error: %v", err), isError: true}
		}
		return entrySavedMsg{entry: saved, encouragement: mood.Encouragement()}
	}
}

func (c checkinModel) view() string {
	w := c.width - 4
	title := titleStyle.Render("Check-in")

	if c.formActive && c.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View()),
		)
	}

	rows := []string{title, ""}
	for _, o := range mood.Options {
		rows = append(rows, fmt.Sprintf("  %s %s", o.Icon, moodStyle(o.Score).Render(o.Slogan)))
	}
	rows = append(rows, "")

	if c.last != nil {
		score := mood.RoundScore(c.last.Score())
		rows = append(rows,
			successStyle.Render("  Saved ")+mood.IconForScore(score)+mutedStyle.Render(" at "+c.last.Time(time.Now()).Local().Format("15:04")),
		)
		if c.encouragement != "" {
			rows = append(rows, "", "  "+accentStyle.Render(c.encouragement))
		}
		rows = append(rows, "")
	}

	rows = append(rows, mutedStyle.Render("Press enter or n to check in"))
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
