package analytics

import "github.com/sadopc/moodr/internal/mood"

// Summary aggregates a series.
type Summary struct {
	Avg          *float64 `json:"avg"`
	Last         *float64 `json:"last"`
	TrackedDays  int      `json:"trackedDays"`
	TotalDays    int      `json:"totalDays"`
	TopMoodScore *int     `json:"topMoodScore"`
}

// ComputeSummary reduces a series. The most common mood counts rounded,
// clamped scores; ties go to the score that appeared first in the series.
func ComputeSummary(series []Point) Summary {
	s := Summary{TotalDays: len(series)}

	var sum float64
	var order []int
	counts := make(map[int]int, 5)
	for _, p := range series {
		if p.Value == nil {
			continue
		}
		v := *p.Value
		sum += v
		s.TrackedDays++
		s.Last = &v

		score := mood.RoundScore(v)
		if _, seen := counts[score]; !seen {
			order = append(order, score)
		}
		counts[score]++
	}

	if s.TrackedDays > 0 {
		avg := sum / float64(s.TrackedDays)
		s.Avg = &avg
	}

	topCount := 0
	for _, score := range order {
		if counts[score] > topCount {
			topCount = counts[score]
			top := score
			s.TopMoodScore = &top
		}
	}
	return s
}

// TopMoodIcon returns the icon of the most common mood, or "—".
func (s Summary) TopMoodIcon() string {
	if s.TopMoodScore == nil {
		return "—"
	}
	return mood.IconForScore(*s.TopMoodScore)
}
