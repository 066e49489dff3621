package chart

import (
	"fmt"

	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
)

// Tooltip places the inspection box above the active point.
type Tooltip struct {
	Width  float64
	Offset float64
	Margin float64
}

// DefaultTooltip matches the default viewport.
var DefaultTooltip = Tooltip{Width: 86, Offset: 40, Margin: 6}

// Place returns the left edge of the tooltip for a point at activeX, kept
// inside a viewport of the given width.
func (t Tooltip) Place(activeX, viewportWidth float64) float64 {
	x := activeX - t.Offset
	hi := viewportWidth - t.Width
	if x > hi {
		x = hi
	}
	if x < t.Margin {
		x = t.Margin
	}
	return x
}

// Label is the tooltip text for a day: its MM/DD and the mood icon for the
// day's real value, or "—" when nothing was logged.
func Label(dateKey string, value *float64) string {
	return fmt.Sprintf("%s %s", datekey.FormatMMDD(dateKey), mood.IconForValue(value))
}
