package tui

// Color constants for the playtrack TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#101B2D" // Dark navy
	ColorBorder         = "#2E4057" // Slate blue

	// Text Colors
	ColorPrimaryText   = "#E8EDF4" // Primary text (names, values, user input)
	ColorSecondaryText = "#9FB2C8" // Secondary text - muted steel blue
	ColorDisabledText  = "#5D6B80" // Disabled/muted text
	ColorPlaceholder   = "#9FB2C8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#14B8A6" // Accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Hover, highlights, selected row

	// State Colors
	ColorError    = "#EF4444" // Validation and lookup errors
	ColorSuccess  = "#22C55E" // Success, confirmations
	ColorWarning  = "#F59E0B" // Warnings, duplicate advisory
	ColorFavorite = "#FACC15" // Favorite star
	ColorActive   = "#34D399" // Live session timer
)
