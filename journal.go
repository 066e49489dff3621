package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/prefs"
	"github.com/sadopc/moodr/internal/store"
	"github.com/spf13/cobra"
)

type checkinOptions struct {
	mood   string
	note   string
	date   string
	image  string
	score  float64
	temp   float64
	code   int
	city   string
	scored bool
	hasTmp bool
}

var (
	checkinOpts checkinOptions

	summaryWindow string
	summaryAnchor string
	summaryJSON   bool

	streakToday string

	gentleTotal     int
	gentleCompleted int

	searchLimit int
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record how you feel",
	Long: `Record a mood check-in.

Examples:
  moodr checkin --mood good
  moodr checkin --mood okay --note "slow morning" --temp 14 --weather-code 61 --city Porto
  moodr checkin --mood great --date 2024-03-09 --score 4.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		o := checkinOpts
		o.scored = cmd.Flags().Changed("score")
		o.hasTmp = cmd.Flags().Changed("temp")
		e, err := recordCheckin(s, o, time.Now())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s saved for %s\n", e.MoodID.Icon(), e.DateKey)
		if e.Weather != nil {
			fmt.Fprintf(w, "%s %s\n", e.Weather.Summary(), mood.FormatTemp(e.Weather.TempC, tempUnitFor(s)))
		}
		fmt.Fprintln(w, mood.Encouragement())
		return noteDisclaimer(s, cmd.ErrOrStderr())
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the mood series and summary for a week or month",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.LoadPreferences()
		if err != nil {
			return err
		}
		window := p.TrendWindow
		if summaryWindow != "" {
			if window, err = analytics.ParseWindow(summaryWindow); err != nil {
				return err
			}
		}
		anchor, err := parseDay(summaryAnchor)
		if err != nil {
			return err
		}
		entries, err := s.ListEntries(store.EntryFilter{})
		if err != nil {
			return err
		}
		return printSummary(cmd.OutOrStdout(), entries, window, anchor, summaryJSON)
	},
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the gentle-action streak and weekly trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		today, err := parseDay(streakToday)
		if err != nil {
			return err
		}
		days, err := s.ListGentleDays()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), analytics.TrendOneLiner(days, datekey.Encode(today)))
		return nil
	},
}

var gentleCmd = &cobra.Command{
	Use:   "gentle",
	Short: "Mark or clear a day's gentle action",
}

var gentleDoneCmd = &cobra.Command{
	Use:   "done [YYYY-MM-DD]",
	Short: "Mark a day's gentle action as done (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		key, err := dayArg(args)
		if err != nil {
			return err
		}
		if err := s.MarkGentleDone(key); err != nil {
			return err
		}
		if cmd.Flags().Changed("total") || cmd.Flags().Changed("completed") {
			if err := s.SetGentleStats(key, analytics.DayStat{Total: gentleTotal, Completed: gentleCompleted}); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Gentle action done for %s\n", key)
		return nil
	},
}

var gentleUndoCmd = &cobra.Command{
	Use:   "undo [YYYY-MM-DD]",
	Short: "Clear a day's gentle action (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		key, err := dayArg(args)
		if err != nil {
			return err
		}
		if err := s.UnmarkGentle(key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Gentle action cleared for %s\n", key)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search check-in notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.ListEntries(store.EntryFilter{})
		if err != nil {
			return err
		}
		printSearch(cmd.OutOrStdout(), entries, strings.Join(args, " "), searchLimit)
		return nil
	},
}

func init() {
	f := checkinCmd.Flags()
	f.StringVarP(&checkinOpts.mood, "mood", "m", "", "Mood: very_bad, bad, okay, good or great")
	f.StringVarP(&checkinOpts.note, "note", "n", "", "Free-text note")
	f.StringVar(&checkinOpts.date, "date", "", "Day to record, YYYY-MM-DD (default today)")
	f.StringVar(&checkinOpts.image, "image", "", "Photo path or URL")
	f.Float64Var(&checkinOpts.score, "score", 0, "Explicit score overriding the mood's (1-5)")
	f.Float64Var(&checkinOpts.temp, "temp", 0, "Temperature in Celsius")
	f.IntVar(&checkinOpts.code, "weather-code", 0, "WMO weather code")
	f.StringVar(&checkinOpts.city, "city", "", "City name for the weather snapshot")
	checkinCmd.MarkFlagRequired("mood")

	summaryCmd.Flags().StringVarP(&summaryWindow, "window", "w", "", "weekly or monthly (default: saved preference)")
	summaryCmd.Flags().StringVarP(&summaryAnchor, "anchor", "a", "", "Any day in the period, YYYY-MM-DD (default today)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print JSON")

	streakCmd.Flags().StringVar(&streakToday, "today", "", "Day to count back from, YYYY-MM-DD (default today)")

	gentleDoneCmd.Flags().IntVar(&gentleTotal, "total", 0, "Suggestions offered that day")
	gentleDoneCmd.Flags().IntVar(&gentleCompleted, "completed", 0, "Suggestions completed that day")
	gentleCmd.AddCommand(gentleDoneCmd, gentleUndoCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 20, "Maximum matches to show")

	rootCmd.AddCommand(checkinCmd, summaryCmd, streakCmd, gentleCmd, searchCmd)
}

// recordCheckin validates the options and stores the entry.
func recordCheckin(s *store.Store, o checkinOptions, now time.Time) (mood.Entry, error) {
	kind, err := mood.ParseKind(o.mood)
	if err != nil {
		return mood.Entry{}, err
	}
	at := now
	if o.date != "" {
		d, ok := datekey.Decode(o.date)
		if !ok || !datekey.Valid(o.date) {
			return mood.Entry{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", o.date)
		}
		at = d
	}
	if o.scored && (math.IsNaN(o.score) || o.score < 1 || o.score > 5) {
		return mood.Entry{}, fmt.Errorf("score %.2f out of range 1-5", o.score)
	}

	e := mood.NewEntry("", kind, o.note, at)
	e.ImageRef = strings.TrimSpace(o.image)
	if o.scored {
		score := o.score
		e.MoodScore = &score
	}
	if o.hasTmp {
		e.Weather = mood.NewWeather(o.temp, o.code, o.city)
	}
	return s.CreateEntry(e)
}

// noteDisclaimer prints the disclaimer to w the first time it is called on
// a journal and records it as acknowledged.
func noteDisclaimer(s *store.Store, w io.Writer) error {
	ack, err := s.DisclaimerAcknowledged()
	if err != nil || ack {
		return err
	}
	fmt.Fprintf(w, "\n%s\n\nThis notice is shown once; it is also in the Settings view.\n", mood.Disclaimer)
	return s.AcknowledgeDisclaimer()
}

func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		return datekey.Noon(time.Now()), nil
	}
	d, ok := datekey.Decode(raw)
	if !ok || !datekey.Valid(raw) {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return d, nil
}

func dayArg(args []string) (string, error) {
	if len(args) == 0 {
		return datekey.Today(), nil
	}
	d, err := parseDay(args[0])
	if err != nil {
		return "", err
	}
	return datekey.Encode(d), nil
}

func printSummary(w io.Writer, entries []mood.Entry, window analytics.Window, anchor time.Time, asJSON bool) error {
	series := analytics.BuildSeries(entries, window, anchor)
	sum := analytics.ComputeSummary(series)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Window  string            `json:"window"`
			Series  []analytics.Point `json:"series"`
			Summary analytics.Summary `json:"summary"`
		}{window.String(), series, sum})
	}

	start, end := analytics.Bounds(window, anchor)
	fmt.Fprintf(w, "%s %s - %s\n\n", strings.ToUpper(window.String()[:1])+window.String()[1:],
		start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	for _, p := range series {
		value := "  -"
		if p.Value != nil {
			value = fmt.Sprintf("%.1f", *p.Value)
		}
		fmt.Fprintf(w, "  %s  %s  %s\n", datekey.FormatMMDD(p.DateKey), mood.IconForValue(p.Value), value)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Tracked      %d/%d days\n", sum.TrackedDays, sum.TotalDays)
	fmt.Fprintf(w, "Avg          %s %s\n", mood.IconForValue(sum.Avg), scoreText(sum.Avg))
	fmt.Fprintf(w, "Most         %s\n", sum.TopMoodIcon())
	fmt.Fprintf(w, "Last         %s\n", scoreText(sum.Last))
	top := "--"
	if sum.TopMoodScore != nil {
		top = fmt.Sprintf("%d/5", *sum.TopMoodScore)
	}
	fmt.Fprintf(w, "Most common  %s\n", top)
	return nil
}

func scoreText(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f/5", *v)
}

func printSearch(w io.Writer, entries []mood.Entry, query string, limit int) {
	matches := mood.SearchNotes(entries, query)
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matching notes")
		return
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	for _, m := range matches {
		score := mood.RoundScore(m.Entry.Score())
		fmt.Fprintf(w, "%s  %s  %s\n", m.Entry.DateKey, mood.IconForScore(score), m.Entry.Note)
	}
}

// tempUnitFor resolves the display unit from the stored preference.
func tempUnitFor(s *store.Store) string {
	pref, err := s.SettingOr(prefs.KeyTempUnit, prefs.UnitAuto)
	if err != nil {
		pref = prefs.UnitAuto
	}
	return prefs.ResolveTempUnit(pref, prefs.LocaleFromEnv())
}
