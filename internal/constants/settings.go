package constants

const (
	// Preference keys
	PrefTheme    = "theme"
	PrefDeviceID = "device_id"

	// Default preference values
	DefaultTheme = "light"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// CelebrationStreak is the minimum streak length worth celebrating after a
// day's check-in is saved.
const CelebrationStreak = 2

// StreakLookbackDays bounds how far back the current-streak walk scans.
const StreakLookbackDays = 90
