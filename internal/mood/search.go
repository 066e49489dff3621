package mood

import "github.com/sahilm/fuzzy"

// NoteMatch is an entry whose note matched a search.
type NoteMatch struct {
	Entry          Entry
	Score          int
	MatchedIndexes []int
}

type noteSource []Entry

func (s noteSource) String(i int) string { return s[i].Note }
func (s noteSource) Len() int            { return len(s) }

// SearchNotes fuzzy-matches query against entry notes, best match first.
// Entries with empty notes never match.
func SearchNotes(entries []Entry, query string) []NoteMatch {
	if query == "" {
		return nil
	}
	var withNotes noteSource
	for _, e := range entries {
		if e.Note != "" {
			withNotes = append(withNotes, e)
		}
	}

	var out []NoteMatch
	for _, m := range fuzzy.FindFrom(query, withNotes) {
		out = append(out, NoteMatch{
			Entry:          withNotes[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		})
	}
	return out
}
