package report

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
)

// Renderer dispatches to the formatter named by Format (table, json or csv)
type Renderer struct {
	Format string
	Pretty bool
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format string, pretty bool) *Renderer {
	return &Renderer{Format: strings.ToLower(format), Pretty: pretty}
}

// Recommendation renders a simulation output
func (r *Renderer) Recommendation(out *domain.SimulationOutput, override *domain.RegimeType) (string, error) {
	switch r.Format {
	case "", "table":
		return (&TableFormatter{}).FormatRecommendation(out, override), nil
	case "json":
		return (&JSONFormatter{Pretty: r.Pretty}).Format(out)
	case "csv":
		return (&CSVFormatter{}).FormatRecommendation(out)
	}
	return "", r.unsupported()
}

// Catalog renders a list of fund options
func (r *Renderer) Catalog(funds []domain.FundOption) (string, error) {
	switch r.Format {
	case "", "table":
		return (&TableFormatter{}).FormatCatalog(funds), nil
	case "json":
		return (&JSONFormatter{Pretty: r.Pretty}).Format(funds)
	case "csv":
		return (&CSVFormatter{}).FormatCatalog(funds)
	}
	return "", r.unsupported()
}

// Projection renders a projection comparison
func (r *Renderer) Projection(c *Comparison) (string, error) {
	switch r.Format {
	case "", "table":
		return (&TableFormatter{}).FormatProjection(c), nil
	case "json":
		return (&JSONFormatter{Pretty: r.Pretty}).Format(c)
	case "csv":
		return (&CSVFormatter{}).FormatProjection(c)
	}
	return "", r.unsupported()
}

func (r *Renderer) unsupported() error {
	return fmt.Errorf("unsupported output format: %s", r.Format)
}
