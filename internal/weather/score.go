package weather

// Fishing score categories.
const (
	ScorePoor      = "Poor"
	ScoreFair      = "Fair"
	ScoreGood      = "Good"
	ScoreExcellent = "Excellent"
)

// Condition maps a WMO weather code to a display label.
func Condition(code int) string {
	switch {
	case code == 0:
		return "Clear Sky"
	case code <= 2:
		return "Partly Cloudy"
	case code == 3:
		return "Overcast"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain Showers"
	case code >= 85 && code <= 86:
		return "Snow Showers"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}

// Score derives the fishing-quality category from temperature (°C), wind
// speed (km/h) and the WMO weather code. Mild temperatures, light wind and
// stable conditions score best.
func Score(tempC, windKmh float64, code int) string {
	points := 0

	switch {
	case tempC >= 10 && tempC <= 25:
		points += 2
	case tempC >= 5 && tempC <= 30:
		points++
	}

	switch {
	case windKmh < 10:
		points += 2
	case windKmh < 20:
		points++
	}

	switch {
	case code <= 3:
		points += 2
	case code == 45 || code == 48 || (code >= 51 && code <= 57):
		points++
	}

	switch {
	case points >= 6:
		return ScoreExcellent
	case points >= 4:
		return ScoreGood
	case points >= 2:
		return ScoreFair
	default:
		return ScorePoor
	}
}
