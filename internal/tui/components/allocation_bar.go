package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/savings-advisor/internal/allocation"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuistyles"
)

const domainFull = allocation.FullAllocation

// AllocationBar shows the allocation as a stacked bar, one colored segment per active fund
type AllocationBar struct {
	Funds []domain.FundOption
	Width int
	Label string
}

// NewAllocationBar creates a bar for the given allocation
func NewAllocationBar(funds []domain.FundOption) *AllocationBar {
	return &AllocationBar{
		Funds: funds,
		Width: 50,
	}
}

// WithLabel sets the bar label
func (a *AllocationBar) WithLabel(label string) *AllocationBar {
	a.Label = label
	return a
}

// WithWidth sets the bar width
func (a *AllocationBar) WithWidth(width int) *AllocationBar {
	a.Width = width
	return a
}

// Total returns the summed share
func (a *AllocationBar) Total() int {
	return allocation.TotalPercent(a.Funds)
}

// IsComplete reports whether the shares sum to exactly 100
func (a *AllocationBar) IsComplete() bool {
	return allocation.IsValidDistribution(a.Funds)
}

// Render returns the styled bar followed by the total
func (a *AllocationBar) Render() string {
	var content strings.Builder

	if a.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(a.Label))
		content.WriteString("\n")
	}

	used := 0
	content.WriteString("[")
	for _, f := range allocation.Active(a.Funds) {
		cells := a.Width * f.Percent / domainFull
		if used+cells > a.Width {
			cells = a.Width - used
		}
		if cells <= 0 {
			continue
		}
		used += cells
		segment := lipgloss.NewStyle().Foreground(tuistyles.FundColor(f.Color))
		content.WriteString(segment.Render(strings.Repeat("█", cells)))
	}
	if used < a.Width {
		content.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("░", a.Width-used)))
	}
	content.WriteString("]")

	totalStyle := tuistyles.MetricNegativeStyle
	if a.IsComplete() {
		totalStyle = tuistyles.MetricPositiveStyle
	}
	content.WriteString(" ")
	content.WriteString(totalStyle.Bold(true).Render(fmt.Sprintf("%d%%", a.Total())))
	content.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf(" of %d%%", domainFull)))

	return content.String()
}
