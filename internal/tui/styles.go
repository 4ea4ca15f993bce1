// Package tui provides the terminal output layer for things-bridge.
//
// Styles use AdaptiveColor for light/dark terminal support. Call
// CheckNoColor at the start of commands that output styled text to respect
// the NO_COLOR environment variable.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/thingsbridge/thingsbridge/internal/domain"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling API
var (
	// ColorPrimary is blue, used for headers and primary text.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for success states and completed items.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for warnings and due items.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error states.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for canceled items and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Header  lipgloss.Style
}

// NewOutputStyles creates common output styles.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Dim:     lipgloss.NewStyle().Foreground(ColorMuted),
		Header:  lipgloss.NewStyle().Bold(true),
	}
}

// StatusColors returns the semantic color for each record status.
func StatusColors() map[domain.Status]lipgloss.AdaptiveColor {
	return map[domain.Status]lipgloss.AdaptiveColor{
		domain.StatusOpen:      ColorPrimary,
		domain.StatusCompleted: ColorSuccess,
		domain.StatusCanceled:  ColorMuted,
	}
}

// StatusIcon returns the icon for a record status. Status displays carry
// icon, color, and text so no single channel is load-bearing.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusOpen:
		return "○"
	case domain.StatusCompleted:
		return "✓"
	case domain.StatusCanceled:
		return "✗"
	default:
		return "?"
	}
}

// CheckNoColor respects the NO_COLOR environment variable. Call this at the
// start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors. Returns
// false if NO_COLOR is set (any value, including empty) or TERM=dumb,
// following https://no-color.org/.
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}
