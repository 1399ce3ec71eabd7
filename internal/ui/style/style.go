// Package style provides shared UI styling primitives including brand
// colors and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// PackageName styles package names in listings.
var PackageName = lipgloss.NewStyle().Foreground(Teal).Bold(true)

// Muted styles secondary detail like hashes and counts.
var Muted = lipgloss.NewStyle().Foreground(Slate)

// Preferred styles versions inside the preferred range.
var Preferred = lipgloss.NewStyle().Foreground(Green)

// Deprecated styles versions outside the preferred range.
var Deprecated = lipgloss.NewStyle().Foreground(Yellow)
