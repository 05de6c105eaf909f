package present

import "github.com/charmbracelet/lipgloss"

const (
	colorGood    = "#16A34A"
	colorMedium  = "#EAB308"
	colorLow     = "#EF4444"
	colorAccent  = "#2563EB"
	colorWarning = "#EA580C"
	colorMuted   = "#626262"
)

// Styles contains the lipgloss styles used by the renderer.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Enabled   lipgloss.Style
	Error     lipgloss.Style
	Heading   lipgloss.Style
	Rank      lipgloss.Style
	JobTitle  lipgloss.Style
	BadgeHigh lipgloss.Style
	BadgeStd  lipgloss.Style
	Card      lipgloss.Style
	Warning   lipgloss.Style
	WarnTitle lipgloss.Style
}

func DefaultStyles() *Styles {
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
		Label:     lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
		Enabled:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorGood)),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLow)),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorGood)),
		Rank:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
		JobTitle:  lipgloss.NewStyle().Bold(true),
		BadgeHigh: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color(colorGood)),
		BadgeStd:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color(colorMedium)),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Warning: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(colorWarning)).Padding(1, 2).Align(lipgloss.Center),
		WarnTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWarning)),
	}
}

// TierColor maps a bar tier to its fill color.
func TierColor(t Tier) string {
	switch t {
	case TierGood:
		return colorGood
	case TierMedium:
		return colorMedium
	default:
		return colorLow
	}
}
