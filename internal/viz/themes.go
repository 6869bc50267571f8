package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the preview.
type Theme struct {
	Name   string
	Canvas lipgloss.Color
	Body   lipgloss.Color
	Header lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Muted  lipgloss.Color
}

var Themes = []Theme{
	{
		Name:   "mono",
		Canvas: lipgloss.Color("252"),
		Body:   lipgloss.Color("15"),
		Header: lipgloss.Color("15"),
		Label:  lipgloss.Color("245"),
		Value:  lipgloss.Color("252"),
		Muted:  lipgloss.Color("240"),
	},
	{
		Name:   "phosphor",
		Canvas: lipgloss.Color("#00cc00"),
		Body:   lipgloss.Color("#88ff88"),
		Header: lipgloss.Color("#00ff00"),
		Label:  lipgloss.Color("#008800"),
		Value:  lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	},
	{
		Name:   "ocean",
		Canvas: lipgloss.Color("#00a8cc"),
		Body:   lipgloss.Color("#ffd700"),
		Header: lipgloss.Color("#e0f0ff"),
		Label:  lipgloss.Color("#4488aa"),
		Value:  lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#335577"),
	},
}

// ThemeNames returns the theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	canvas, header, label, value, help, stats, graph lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		canvas: lipgloss.NewStyle().Foreground(t.Canvas).Padding(1, 2),
		header: lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Label).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2),
		graph: lipgloss.NewStyle().Foreground(t.Body).Padding(1, 0),
	}
}
