package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Covered shifts: green, nothing to do
	colorCovered = color.New(color.FgGreen)

	// Uncovered shifts: bold red, someone has to be found
	colorUncovered = color.New(color.FgRed, color.Bold)

	// Night and urgent markers
	colorAlert = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Entity names in the grouped listing
	colorEntity = color.New(color.FgCyan, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatCovered(s string) string {
	return colorCovered.Sprint(s)
}

func formatUncovered(s string) string {
	return colorUncovered.Sprint(s)
}

func formatAlert(s string) string {
	return colorAlert.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatEntity(s string) string {
	return colorEntity.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
