package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusIndicator returns a colored activity status such as "● ACTIVE".
func StatusIndicator(status domain.ActivityStatus) string {
	switch status {
	case domain.StatusActive:
		return StyleGreen.Render("● ACTIVE")
	case domain.StatusSedentary:
		return StyleYellow.Render("● SEDENTARY")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// MessageLine renders the resolver's status line with a severity marker.
func MessageLine(m advisor.Message) string {
	if m.Severity == advisor.SeverityWarning {
		return StyleYellow.Render("⚠ " + m.Text)
	}
	return StyleGreen.Render("✔ " + m.Text)
}

// MatchBadge describes how a plan was chosen.
func MatchBadge(kind domain.MatchKind) string {
	switch kind {
	case domain.MatchExact:
		return StyleGreen.Render("exact match")
	case domain.MatchBodyFallback:
		return StyleYellow.Render("closest plan for your body profile")
	case domain.MatchDefault:
		return StyleBlue.Render("general plan")
	default:
		return StyleDim.Render(string(kind))
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
