package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
)

var ErrEntryNotFound = errors.New("entry not found")

const (
	entryColumns = `id, mood_id, mood_score, note, date_key, timestamp, image_ref, weather`

	insertEntryStatement = `
	INSERT INTO entries (id, mood_id, mood_score, note, date_key, timestamp, image_ref, weather)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

// CreateEntry stores a new check-in. An empty ID is filled with a UUID and
// the note is trimmed. The mood kind and day key must be valid.
func (s *Store) CreateEntry(e mood.Entry) (mood.Entry, error) {
	if !e.MoodID.Valid() {
		return mood.Entry{}, fmt.Errorf("create entry: %w: %q", mood.ErrUnknownMood, e.MoodID)
	}
	if !datekey.Valid(e.DateKey) {
		return mood.Entry{}, fmt.Errorf("create entry: invalid date key %q", e.DateKey)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Note = strings.TrimSpace(e.Note)

	args, err := entryArgs(e)
	if err != nil {
		return mood.Entry{}, fmt.Errorf("create entry: %w", err)
	}
	if _, err := s.db.Exec(insertEntryStatement, args...); err != nil {
		return mood.Entry{}, fmt.Errorf("create entry: %w", err)
	}
	return s.GetEntry(e.ID)
}

func (s *Store) GetEntry(id string) (mood.Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mood.Entry{}, ErrEntryNotFound
		}
		return mood.Entry{}, fmt.Errorf("get entry %s: %w", id, err)
	}
	return e, nil
}

// ListEntries returns matching entries ordered by day, then timestamp.
func (s *Store) ListEntries(f EntryFilter) ([]mood.Entry, error) {
	var where []string
	var args []any
	if f.From != "" {
		where = append(where, "date_key >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		where = append(where, "date_key <= ?")
		args = append(args, f.To)
	}
	if f.Mood != "" {
		where = append(where, "mood_id = ?")
		args = append(args, string(f.Mood))
	}

	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date_key, timestamp, created_at"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []mood.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// EntriesForDay returns the entries logged on key.
func (s *Store) EntriesForDay(key string) ([]mood.Entry, error) {
	return s.ListEntries(EntryFilter{From: key, To: key})
}

func (s *Store) DeleteEntry(id string) error {
	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ImportEntries inserts entries in one transaction, skipping IDs that already
// exist. Entries without an ID get a fresh UUID. Mood kinds are stored as
// given so unknown values survive a round trip. It returns how many rows were
// added.
func (s *Store) ImportEntries(entries []mood.Entry) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import entries: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(strings.Replace(insertEntryStatement, "INSERT", "INSERT OR IGNORE", 1))
	if err != nil {
		return 0, fmt.Errorf("import entries: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, e := range entries {
		if e.DateKey == "" {
			continue
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		args, err := entryArgs(e)
		if err != nil {
			return 0, fmt.Errorf("import entry %s: %w", e.ID, err)
		}
		res, err := stmt.Exec(args...)
		if err != nil {
			return 0, fmt.Errorf("import entry %s: %w", e.ID, err)
		}
		n, _ := res.RowsAffected()
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import entries: %w", err)
	}
	return added, nil
}

func entryArgs(e mood.Entry) ([]any, error) {
	var score sql.NullFloat64
	if e.MoodScore != nil {
		score = sql.NullFloat64{Float64: *e.MoodScore, Valid: true}
	}
	var weather sql.NullString
	if e.Weather != nil {
		b, err := json.Marshal(e.Weather)
		if err != nil {
			return nil, fmt.Errorf("encode weather: %w", err)
		}
		weather = sql.NullString{String: string(b), Valid: true}
	}
	return []any{e.ID, string(e.MoodID), score, e.Note, e.DateKey, e.Timestamp, e.ImageRef, weather}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (mood.Entry, error) {
	var e mood.Entry
	var kind string
	var score sql.NullFloat64
	var weather sql.NullString
	if err := sc.Scan(&e.ID, &kind, &score, &e.Note, &e.DateKey, &e.Timestamp, &e.ImageRef, &weather); err != nil {
		return mood.Entry{}, err
	}
	e.MoodID = mood.Kind(kind)
	if score.Valid {
		v := score.Float64
		e.MoodScore = &v
	}
	if weather.Valid && weather.String != "" {
		var w mood.Weather
		if err := json.Unmarshal([]byte(weather.String), &w); err != nil {
			log.Printf("store: entry %s has malformed weather, ignoring: %v", e.ID, err)
		} else {
			e.Weather = &w
		}
	}
	return e, nil
}
