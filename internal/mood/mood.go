// Package mood holds the journal's data model: mood kinds, entries and the
// per-day views built directly from them.
package mood

import (
	"errors"
	"math"
	"strings"
)

// Kind identifies one of the five moods a check-in can record.
type Kind string

const (
	VeryBad Kind = "very_bad"
	Bad     Kind = "bad"
	Okay    Kind = "okay"
	Good    Kind = "good"
	Great   Kind = "great"
)

// DefaultScore is used for entries whose mood kind is unknown.
const DefaultScore = 3

var ErrUnknownMood = errors.New("unknown mood")

// Option describes a mood as offered to the user.
type Option struct {
	Kind   Kind
	Icon   string
	Score  int
	Slogan string
	Color  string
}

// Options lists the moods from worst to best.
var Options = []Option{
	{Kind: VeryBad, Icon: "😞", Score: 1, Slogan: "Ugh… not it", Color: "#E11D48"},
	{Kind: Bad, Icon: "😕", Score: 2, Slogan: "Meh… kinda off", Color: "#F97316"},
	{Kind: Okay, Icon: "😐", Score: 3, Slogan: "Just so-so", Color: "#FBBF24"},
	{Kind: Good, Icon: "🙂", Score: 4, Slogan: "Pretty good", Color: "#10B981"},
	{Kind: Great, Icon: "😄", Score: 5, Slogan: "Feeling it", Color: "#0EA5E9"},
}

func lookup(k Kind) (Option, bool) {
	for _, o := range Options {
		if o.Kind == k {
			return o, true
		}
	}
	return Option{}, false
}

// ParseKind accepts a kind name case-insensitively; "very-bad" and
// "very bad" are accepted as spellings of very_bad.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if _, ok := lookup(Kind(norm)); ok {
		return Kind(norm), nil
	}
	return "", ErrUnknownMood
}

// Score returns the 1-5 score for k, or DefaultScore if k is unknown.
func (k Kind) Score() int {
	if o, ok := lookup(k); ok {
		return o.Score
	}
	return DefaultScore
}

// Icon returns the emoji for k. Unknown kinds render as okay.
func (k Kind) Icon() string {
	if o, ok := lookup(k); ok {
		return o.Icon
	}
	return IconForScore(DefaultScore)
}

func (k Kind) Valid() bool {
	_, ok := lookup(k)
	return ok
}

// KindForScore maps a score to its mood kind after clamping.
func KindForScore(score int) Kind {
	return Options[ClampScore(score)-1].Kind
}

// ClampScore limits a score to [1, 5].
func ClampScore(s int) int {
	return max(1, min(5, s))
}

// RoundScore rounds half up and clamps to [1, 5].
func RoundScore(v float64) int {
	return ClampScore(int(math.Floor(v + 0.5)))
}

// IconForScore returns the emoji for an integer score.
func IconForScore(score int) string {
	return Options[ClampScore(score)-1].Icon
}

// IconForValue returns the emoji nearest an averaged value, or an em dash
// when there is no value.
func IconForValue(v *float64) string {
	if v == nil {
		return "—"
	}
	return IconForScore(RoundScore(*v))
}
