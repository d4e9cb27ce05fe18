package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/savings-advisor/internal/tui/tuistyles"
)

// Bar is one row of a BarChart
type Bar struct {
	Label string
	Value decimal.Decimal
	Color lipgloss.TerminalColor
}

// BarChart renders horizontal bars scaled to the largest value
type BarChart struct {
	Title string
	Bars  []Bar
	Width int
}

// NewBarChart creates a new bar chart
func NewBarChart(title string) *BarChart {
	return &BarChart{
		Title: title,
		Bars:  []Bar{},
		Width: 40,
	}
}

// AddBar appends a bar
func (c *BarChart) AddBar(label string, value decimal.Decimal, color lipgloss.TerminalColor) *BarChart {
	c.Bars = append(c.Bars, Bar{Label: label, Value: value, Color: color})
	return c
}

// WithWidth sets the longest bar's width
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the styled chart
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	maxValue := decimal.Zero
	labelWidth := 0
	for _, b := range c.Bars {
		if b.Value.GreaterThan(maxValue) {
			maxValue = b.Value
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	for i, b := range c.Bars {
		if i > 0 {
			content.WriteString("\n")
		}
		cells := 0
		if maxValue.IsPositive() && b.Value.IsPositive() {
			cells = int(b.Value.Mul(decimal.NewFromInt(int64(c.Width))).Div(maxValue).IntPart())
		}
		color := b.Color
		if color == nil {
			color = tuistyles.ColorPrimary
		}
		style := lipgloss.NewStyle().Foreground(color)
		content.WriteString(fmt.Sprintf("%-*s ", labelWidth, b.Label))
		content.WriteString(style.Render(strings.Repeat("▇", cells)))
		content.WriteString(" ")
		content.WriteString(tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(b.Value)))
	}

	return content.String()
}
