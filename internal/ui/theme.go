package ui

import "os"

// Colors holds the accent colors used by styled output.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
}

// Theme controls styling of all terminal output.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme creates the default theme. Color output is disabled when the
// NO_COLOR environment variable is set (https://no-color.org).
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		Colors: Colors{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Warning:   "#EAB308",
			Error:     "#EF4444",
		},
		NoColor: noColor,
	}
}
