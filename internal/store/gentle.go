package store

import (
	"fmt"

	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/datekey"
)

// MarkGentleDone records a completed gentle action for the day. Marking a
// day twice is a no-op.
func (s *Store) MarkGentleDone(key string) error {
	if !datekey.Valid(key) {
		return fmt.Errorf("mark gentle action: invalid date key %q", key)
	}
	_, err := s.db.Exec(`INSERT OR IGNORE INTO gentle_actions (date_key) VALUES (?)`, key)
	if err != nil {
		return fmt.Errorf("mark gentle action: %w", err)
	}
	return nil
}

func (s *Store) UnmarkGentle(key string) error {
	if _, err := s.db.Exec(`DELETE FROM gentle_actions WHERE date_key = ?`, key); err != nil {
		return fmt.Errorf("unmark gentle action: %w", err)
	}
	return nil
}

// ToggleGentle flips the day's completion and reports the new state.
func (s *Store) ToggleGentle(key string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM gentle_actions WHERE date_key = ?`, key).Scan(&n); err != nil {
		return false, fmt.Errorf("toggle gentle action: %w", err)
	}
	if n > 0 {
		return false, s.UnmarkGentle(key)
	}
	return true, s.MarkGentleDone(key)
}

// ListGentleDays returns the completed days in ascending order.
func (s *Store) ListGentleDays() ([]string, error) {
	rows, err := s.db.Query(`SELECT date_key FROM gentle_actions ORDER BY date_key`)
	if err != nil {
		return nil, fmt.Errorf("list gentle days: %w", err)
	}
	defer rows.Close()

	days := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		days = append(days, k)
	}
	return days, rows.Err()
}

// SetGentleStats stores the day's suggestion tally, replacing any earlier one.
func (s *Store) SetGentleStats(key string, st analytics.DayStat) error {
	if st.Total < 0 || st.Completed < 0 {
		return fmt.Errorf("set gentle stats: negative tally %d/%d", st.Completed, st.Total)
	}
	_, err := s.db.Exec(
		`INSERT INTO gentle_action_stats (date_key, total, completed) VALUES (?, ?, ?)
		 ON CONFLICT(date_key) DO UPDATE SET total = excluded.total, completed = excluded.completed`,
		key, st.Total, st.Completed,
	)
	if err != nil {
		return fmt.Errorf("set gentle stats: %w", err)
	}
	return nil
}

func (s *Store) GentleStats() (map[string]analytics.DayStat, error) {
	rows, err := s.db.Query(`SELECT date_key, total, completed FROM gentle_action_stats`)
	if err != nil {
		return nil, fmt.Errorf("list gentle stats: %w", err)
	}
	defer rows.Close()

	stats := map[string]analytics.DayStat{}
	for rows.Next() {
		var k string
		var st analytics.DayStat
		if err := rows.Scan(&k, &st.Total, &st.Completed); err != nil {
			return nil, err
		}
		stats[k] = st
	}
	return stats, rows.Err()
}

// CompletionLog loads both halves of the gentle-action record.
func (s *Store) CompletionLog() (analytics.CompletionLog, error) {
	days, err := s.ListGentleDays()
	if err != nil {
		return analytics.CompletionLog{}, err
	}
	stats, err := s.GentleStats()
	if err != nil {
		return analytics.CompletionLog{}, err
	}
	return analytics.CompletionLog{Days: days, Stats: stats}, nil
}

// ImportCompletionLog merges a completion log into the store in one
// transaction. Existing tallies for the same day are overwritten.
func (s *Store) ImportCompletionLog(l analytics.CompletionLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("import completion log: %w", err)
	}
	defer tx.Rollback()

	for _, k := range l.Days {
		if !datekey.Valid(k) {
			continue
		}
		if _, err := tx.Exec(`INSERT OR IGNORE INTO gentle_actions (date_key) VALUES (?)`, k); err != nil {
			return fmt.Errorf("import gentle day %s: %w", k, err)
		}
	}
	for k, st := range l.Stats {
		if !datekey.Valid(k) {
			continue
		}
		_, err := tx.Exec(
			`INSERT INTO gentle_action_stats (date_key, total, completed) VALUES (?, ?, ?)
			 ON CONFLICT(date_key) DO UPDATE SET total = excluded.total, completed = excluded.completed`,
			k, st.Total, st.Completed,
		)
		if err != nil {
			return fmt.Errorf("import gentle stats %s: %w", k, err)
		}
	}
	return tx.Commit()
}
