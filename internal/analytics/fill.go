package analytics

// Plot is a series prepared for drawing.
type Plot struct {
	// Values are the plotted values. Inside the first..last real-value span
	// gaps are carried forward; outside it they stay nil.
	Values []*float64
	// Connected is false when fewer than two days have real values; such a
	// series is drawn as isolated markers only.
	Connected bool
	// Markers are the indices of days with real check-ins.
	Markers []int
}

// Fill applies the chart gap-fill policy to a series.
func Fill(series []Point) Plot {
	return FillValues(Values(series))
}

// FillValues is Fill over a bare value column.
func FillValues(raw []*float64) Plot {
	p := Plot{Values: make([]*float64, len(raw))}
	for i, v := range raw {
		if v != nil {
			p.Markers = append(p.Markers, i)
		}
	}

	if len(p.Markers) < 2 {
		copy(p.Values, raw)
		return p
	}

	first, last := p.Markers[0], p.Markers[len(p.Markers)-1]
	p.Connected = true

	var lastKnown *float64
	for i := first; i <= last; i++ {
		if raw[i] != nil {
			lastKnown = raw[i]
		}
		p.Values[i] = lastKnown
	}

	// Bounded backfill of a leading nil run inside the span. It stops at the
	// first non-nil cell, so it never touches days after data appeared.
	var firstKnown *float64
	for i := first; i <= last; i++ {
		if p.Values[i] != nil {
			firstKnown = p.Values[i]
			break
		}
	}
	if firstKnown != nil {
		for i := first; i <= last && p.Values[i] == nil; i++ {
			p.Values[i] = firstKnown
		}
	}
	return p
}

// Segments returns the [start, end] index runs of consecutive plotted
// values. A disconnected plot has none.
func (p Plot) Segments() [][2]int {
	if !p.Connected {
		return nil
	}
	var segs [][2]int
	start := -1
	for i, v := range p.Values {
		switch {
		case v != nil && start < 0:
			start = i
		case v == nil && start >= 0:
			segs = append(segs, [2]int{start, i - 1})
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, [2]int{start, len(p.Values) - 1})
	}
	return segs
}

// IsMarker reports whether index i is a real check-in day.
func (p Plot) IsMarker(i int) bool {
	for _, m := range p.Markers {
		if m == i {
			return true
		}
	}
	return false
}
