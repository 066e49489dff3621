package analytics

import (
	"time"

	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
)

// SeriesCache memoizes the last BuildSeries result. Callers must pass a
// revision that is unique to each entry snapshot, or call Invalidate when
// the entries change.
type SeriesCache struct {
	valid    bool
	revision int
	window   Window
	anchor   string
	series   []Point
	summary  Summary
}

// Build returns the series and summary for the given inputs, recomputing
// only when one of them changed since the previous call.
func (c *SeriesCache) Build(entries []mood.Entry, revision int, w Window, anchor time.Time) ([]Point, Summary) {
	key := datekey.Encode(anchor)
	if c.valid && c.revision == revision && c.window == w && c.anchor == key {
		return c.series, c.summary
	}
	c.series = BuildSeries(entries, w, anchor)
	c.summary = ComputeSummary(c.series)
	c.revision, c.window, c.anchor, c.valid = revision, w, key, true
	return c.series, c.summary
}

// Invalidate forces the next Build to recompute.
func (c *SeriesCache) Invalidate() {
	c.valid = false
}
