package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// ListStyles contains the styles used for list output
type ListStyles struct {
	Header lipgloss.Style
	Index  lipgloss.Style
	Date   lipgloss.Style
	Desc   lipgloss.Style
	Hours  lipgloss.Style
	Total  lipgloss.Style
}

// DefaultListStyles returns the default list styles
func DefaultListStyles() ListStyles {
	// Color palette
	primary := lipgloss.Color("99")   // Purple
	secondary := lipgloss.Color("39") // Cyan
	muted := lipgloss.Color("240")    // Gray

	return ListStyles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Index:  lipgloss.NewStyle().Foreground(muted),
		Date:   lipgloss.NewStyle().Foreground(secondary),
		Desc:   lipgloss.NewStyle(),
		Hours:  lipgloss.NewStyle().Foreground(muted),
		Total:  lipgloss.NewStyle().Bold(true),
	}
}
