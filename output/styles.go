package output

import "github.com/charmbracelet/lipgloss"

// Color constants - Dracula theme
const (
	colorCurrentLine = "#44475a"
	colorCyan        = "#8be9fd"
	colorGreen       = "#50fa7b"
	colorOrange      = "#ffb86c"
	colorRed         = "#ff5555"
)

const separatorLine = "────────────────────────────────────────"

// styles contains the lipgloss styles used by the Reporter. When styling is
// disabled every style degrades to a plain-text passthrough.
type styles struct {
	section   lipgloss.Style
	separator lipgloss.Style

	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
}

func newStyles(styled bool) styles {
	if !styled {
		plain := lipgloss.NewStyle()

		return styles{
			section:   plain,
			separator: plain,
			success:   plain,
			failure:   plain,
			warning:   plain,
		}
	}

	return styles{
		section:   color(colorCyan).Bold(true),
		separator: color(colorCurrentLine),
		success:   color(colorGreen),
		failure:   color(colorRed).Bold(true),
		warning:   color(colorOrange).Bold(true),
	}
}

// create a common style with the given foreground color
func color(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}
