package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/moodr/internal/mood"
)

func ToCSV(entries []mood.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Date", "Time", "Mood", "Score", "Note", "Weather", "Image"}); err != nil {
		return err
	}

	now := time.Now()
	for _, e := range entries {
		weather := ""
		if e.Weather != nil {
			weather = e.Weather.Summary()
		}
		row := []string{
			e.ID,
			e.DateKey,
			formatTime(e, now),
			string(e.MoodID),
			strconv.FormatFloat(e.Score(), 'f', -1, 64),
			e.Note,
			weather,
			e.ImageRef,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// formatTime renders the entry's local clock time, or "" when the timestamp
// is missing or unparseable.
func formatTime(e mood.Entry, now time.Time) string {
	t := e.Time(now)
	if t.Equal(now) {
		return ""
	}
	return t.Local().Format("15:04")
}
