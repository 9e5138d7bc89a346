// Package color names the ANSI colors used in CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

// High-intensity ANSI palette.
var (
	HiRed    = New("9")
	HiBlue   = New("12")
	HiPurple = New("13")
)
