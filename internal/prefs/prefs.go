// Package prefs resolves user preferences stored as settings into the
// concrete values the UI renders with.
package prefs

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Setting keys.
const (
	KeyTheme       = "theme"
	KeyTempUnit    = "temp_unit"
	KeyTrendWindow = "trend_window"

	// KeyDisclaimerAck is "true" once the disclaimer was accepted. It is
	// not seeded, so a new database starts unacknowledged.
	KeyDisclaimerAck = "disclaimer_ack"
)

// Theme values.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Temperature unit values.
const (
	UnitAuto       = "auto"
	UnitCelsius    = "celsius"
	UnitFahrenheit = "fahrenheit"
)

// Defaults seeded into a new database.
var Defaults = map[string]string{
	KeyTheme:       ThemeSystem,
	KeyTempUnit:    UnitAuto,
	KeyTrendWindow: "weekly",
}

var Themes = []string{ThemeSystem, ThemeLight, ThemeDark}

var TempUnits = []string{UnitAuto, UnitCelsius, UnitFahrenheit}

const defaultLocale = "en-US"

var fahrenheitRegions = map[string]bool{
	"US": true,
	"BS": true,
	"BZ": true,
	"KY": true,
	"PW": true,
}

// LocaleFromEnv returns the first non-empty of LC_ALL, LC_MESSAGES and LANG.
func LocaleFromEnv() string {
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Region extracts the upper-cased region from a BCP 47 tag ("en-US") or a
// POSIX locale ("en_US.UTF-8@euro"). An empty locale is read as en-US.
func Region(locale string) string {
	if locale == "" {
		locale = defaultLocale
	}
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	parts := strings.FieldsFunc(locale, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) < 2 {
		return ""
	}
	return strings.ToUpper(parts[1])
}

// ResolveTempUnit turns the stored preference into celsius or fahrenheit.
// "auto" and unknown values are decided by the locale's region.
func ResolveTempUnit(pref, locale string) string {
	switch pref {
	case UnitCelsius, UnitFahrenheit:
		return pref
	}
	if fahrenheitRegions[Region(locale)] {
		return UnitFahrenheit
	}
	return UnitCelsius
}

// ResolveTheme reports whether the UI should use dark colors. systemDark is
// the terminal's detected background.
func ResolveTheme(pref string, systemDark bool) bool {
	switch pref {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}
	return systemDark
}

// ApplyTheme points lipgloss's adaptive colors at the resolved theme.
// systemDark is the terminal background as detected at startup, before any
// theme was applied; lipgloss reports the override after that.
func ApplyTheme(pref string, systemDark bool) {
	lipgloss.SetHasDarkBackground(ResolveTheme(pref, systemDark))
}
