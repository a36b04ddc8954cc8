package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	FgPanel  lipgloss.Color // Label text drawn over a panel

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Panels fade from idle to active as they are revealed.
	LeadingIdle    lipgloss.Color
	LeadingActive  lipgloss.Color
	TrailingIdle   lipgloss.Color
	TrailingActive lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Unread  lipgloss.Style // Item not yet marked read
	Cursor  lipgloss.Style
	Key     lipgloss.Style // Key hints in the status line
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),
	FgPanel:  lipgloss.Color("#f5f5f5"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	LeadingIdle:    lipgloss.Color("#2f4a3a"),
	LeadingActive:  lipgloss.Color("#42b883"),
	TrailingIdle:   lipgloss.Color("#4a3a2a"),
	TrailingActive: lipgloss.Color("#f1a208"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Unread: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Key: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// PanelColors returns the idle and active backgrounds of a panel side.
func (t *Theme) PanelColors(leading bool) (idle, active lipgloss.Color) {
	if leading {
		return t.LeadingIdle, t.LeadingActive
	}
	return t.TrailingIdle, t.TrailingActive
}
