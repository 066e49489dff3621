package mood

import (
	"time"

	"github.com/sadopc/moodr/internal/datekey"
)

// Cell is one day in a month calendar grid.
type Cell struct {
	Date    time.Time
	Key     string
	InMonth bool
	Entry   *Entry
}

// MonthGrid lays out month as whole Monday-Sunday weeks: it starts on the
// Monday on or before the 1st and ends on the Sunday on or after the last
// day. Each cell carries the latest entry for that day, if any.
func MonthGrid(month time.Time, latest map[string]Entry) []Cell {
	start := datekey.StartOfMonth(month)
	end := datekey.EndOfMonth(month)
	gridStart := datekey.AddDays(start, -datekey.WeekdayMondayZero(start))
	gridEnd := datekey.AddDays(end, 6-datekey.WeekdayMondayZero(end))

	var cells []Cell
	for d := gridStart; !d.After(gridEnd); d = datekey.AddDays(d, 1) {
		key := datekey.Encode(d)
		c := Cell{Date: d, Key: key, InMonth: d.Month() == month.Month()}
		if e, ok := latest[key]; ok {
			c.Entry = &e
		}
		cells = append(cells, c)
	}
	return cells
}

// WeekdayLabels are the grid column headers.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
