// Package banner renders the fixed-width bordered frame shared by the
// prompt advisory and the type-check report, so both hooks present a
// consistent block to the assistant.
package banner

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Width is the content width of every banner, excluding the border.
const Width = 64

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Padding(0, 1).
	Width(Width)

// Render wraps body in the shared double-bordered frame.
func Render(body string) string {
	return frameStyle.Render(body)
}

// Separator returns the horizontal rule drawn between a banner and the
// content that follows it.
func Separator() string {
	return strings.Repeat("─", Width+2)
}
