package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/prefs"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

// SettingOr returns the stored value, or fallback when the key is missing.
func (s *Store) SettingOr(key, fallback string) (string, error) {
	v, err := s.GetSetting(key)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	return v, err
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var st Setting
		if err := rows.Scan(&st.Key, &st.Value); err != nil {
			return nil, err
		}
		settings = append(settings, st)
	}
	return settings, rows.Err()
}

// Preferences is the resolved view of the preference settings.
type Preferences struct {
	Theme       string
	TempUnit    string
	TrendWindow analytics.Window

	// DisclaimerAck is read-only here; see AcknowledgeDisclaimer.
	DisclaimerAck bool
}

// LoadPreferences reads the preference settings, falling back to defaults
// for missing or unrecognized values.
func (s *Store) LoadPreferences() (Preferences, error) {
	p := Preferences{}
	var err error
	if p.Theme, err = s.SettingOr(prefs.KeyTheme, prefs.ThemeSystem); err != nil {
		return p, err
	}
	if p.TempUnit, err = s.SettingOr(prefs.KeyTempUnit, prefs.UnitAuto); err != nil {
		return p, err
	}
	window, err := s.SettingOr(prefs.KeyTrendWindow, prefs.Defaults[prefs.KeyTrendWindow])
	if err != nil {
		return p, err
	}
	// An unknown value leaves ParseWindow's Weekly fallback in place.
	p.TrendWindow, _ = analytics.ParseWindow(window)
	p.DisclaimerAck, err = s.DisclaimerAcknowledged()
	return p, err
}

// SavePreferences writes all preference settings.
func (s *Store) SavePreferences(p Preferences) error {
	for k, v := range map[string]string{
		prefs.KeyTheme:       p.Theme,
		prefs.KeyTempUnit:    p.TempUnit,
		prefs.KeyTrendWindow: p.TrendWindow.String(),
	} {
		if err := s.SetSetting(k, v); err != nil {
			return err
		}
	}
	return nil
}

// DisclaimerAcknowledged reports whether the disclaimer was accepted.
func (s *Store) DisclaimerAcknowledged() (bool, error) {
	v, err := s.SettingOr(prefs.KeyDisclaimerAck, "false")
	return v == "true", err
}

func (s *Store) AcknowledgeDisclaimer() error {
	return s.SetSetting(prefs.KeyDisclaimerAck, "true")
}
