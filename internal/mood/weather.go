package mood

import (
	"fmt"
	"math"
)

// Temperature units.
const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
)

// NewWeather builds a snapshot from a WMO weather code, filling in the
// label and icon.
func NewWeather(tempC float64, code int, city string) *Weather {
	return &Weather{
		TempC: tempC,
		Code:  code,
		Label: WeatherLabel(code),
		Icon:  WeatherIcon(code),
		City:  city,
	}
}

// WeatherLabel names a WMO weather interpretation code.
func WeatherLabel(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 3:
		return "Partly cloudy"
	case code == 45 || code == 48:
		return "Foggy"
	case code >= 51 && code <= 67:
		return "Drizzle"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain"
	case code >= 95:
		return "Thunderstorm"
	}
	return "Weather"
}

func WeatherIcon(code int) string {
	switch {
	case code == 0:
		return "☀️"
	case code >= 1 && code <= 3:
		return "⛅️"
	case code == 45 || code == 48:
		return "🌫️"
	case code >= 51 && code <= 67:
		return "🌦️"
	case code >= 71 && code <= 77:
		return "🌨️"
	case code >= 80 && code <= 82:
		return "🌧️"
	case code >= 95:
		return "⛈️"
	}
	return "🌤️"
}

// CToF converts Celsius to whole degrees Fahrenheit.
func CToF(c float64) int {
	return int(math.Floor(c*9/5 + 32 + 0.5))
}

// FormatTemp renders tempC in unit; any unit other than Fahrenheit is
// shown in Celsius.
func FormatTemp(tempC float64, unit string) string {
	if unit == Fahrenheit {
		return fmt.Sprintf("%d°F", CToF(tempC))
	}
	return fmt.Sprintf("%d°C", int(math.Floor(tempC+0.5)))
}

// Summary renders the snapshot as "City · icon label".
func (w Weather) Summary() string {
	s := w.Icon + " " + w.Label
	if w.City != "" {
		s = w.City + " · " + s
	}
	return s
}
