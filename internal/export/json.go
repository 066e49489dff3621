package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/moodr/internal/mood"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`
	Timestamp string        `json:"timestamp,omitempty"`
	Mood      string        `json:"mood"`
	Icon      string        `json:"icon"`
	Score     float64       `json:"score"`
	Note      string        `json:"note,omitempty"`
	Image     string        `json:"image,omitempty"`
	Weather   *mood.Weather `json:"weather,omitempty"`
}

func ToJSON(entries []mood.Entry, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
		Entries:    []jsonEntry{},
	}

	for _, e := range entries {
		export.Entries = append(export.Entries, jsonEntry{
			ID:        e.ID,
			Date:      e.DateKey,
			Timestamp: e.Timestamp,
			Mood:      string(e.MoodID),
			Icon:      mood.IconForValue(ptr(e.Score())),
			Score:     e.Score(),
			Note:      e.Note,
			Image:     e.ImageRef,
			Weather:   e.Weather,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }
