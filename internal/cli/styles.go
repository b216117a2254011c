package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"blox/internal/domain"
)

type styles struct {
	header    lipgloss.Style
	key       lipgloss.Style
	name      lipgloss.Style
	faint     lipgloss.Style
	errorLine lipgloss.Style
	severity  map[domain.Severity]lipgloss.Style
}

// newStyles renders for w, so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:    r.NewStyle().Bold(true).Underline(true),
		key:       r.NewStyle().Width(12).Foreground(lipgloss.Color("39")),
		name:      r.NewStyle().Width(14).Bold(true),
		faint:     r.NewStyle().Faint(true),
		errorLine: r.NewStyle().Foreground(lipgloss.Color("196")),
		severity: map[domain.Severity]lipgloss.Style{
			domain.SeverityInfo:    r.NewStyle().Foreground(lipgloss.Color("39")),
			domain.SeveritySuccess: r.NewStyle().Foreground(lipgloss.Color("42")),
			domain.SeverityWarning: r.NewStyle().Foreground(lipgloss.Color("214")),
			domain.SeverityError:   r.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}
