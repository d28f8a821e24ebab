package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/RuvinSL/content-seo-check/pkg/models"
	"github.com/charmbracelet/lipgloss"
)

// Band classifies a factor row by how far its value sits from the
// suggested target.
type Band string

const (
	BandOnTarget  Band = "on-target"
	BandCaution   Band = "caution"
	BandOffTarget Band = "off-target"
)

// Band thresholds, closed at the boundary: exactly 0.05 is still
// on-target, exactly 0.20 is still caution.
const (
	onTargetMax = 0.05
	cautionMax  = 0.20
)

// Deviation computes the normalized distance between a factor value and
// its suggested target. Absent or zero targets yield 0.
func Deviation(value float64, suggestion *float64) float64 {
	if suggestion == nil || *suggestion == 0 {
		return 0
	}
	return math.Abs(value-*suggestion) / *suggestion
}

// Classify maps a deviation onto its band.
func Classify(deviation float64) Band {
	switch {
	case deviation <= onTargetMax:
		return BandOnTarget
	case deviation <= cautionMax:
		return BandCaution
	default:
		return BandOffTarget
	}
}

// Field is one labelled line of the report header.
type Field struct {
	Label string
	Value string
}

// FactorRow is the display form of one v2 factor result.
type FactorRow struct {
	Factor          string
	Value           float64
	SuggestionValue string // "N/A" when absent
	Score           float64
	Deviation       float64
	Band            Band
	Suggestion      string
}

// View is the display structure a report is rendered from.
type View struct {
	Title           string
	Fields          []Field
	Recommendations []string // v1 only
	Rows            []FactorRow
}

// BuildView turns either report variant into its display structure.
// Missing optional fields render as "N/A" or 0; it never panics on an
// incomplete report.
func BuildView(report models.Report) View {
	if report.V2 != nil {
		return buildV2View(report.V2)
	}
	if report.V1 != nil {
		return buildV1View(report.V1)
	}
	return View{Title: "Analysis Report"}
}

func buildV1View(r *models.ReportV1) View {
	return View{
		Title: "Analysis Report",
		Fields: []Field{
			{Label: "Version", Value: orNA(r.Version)},
			{Label: "Keywords", Value: orNA(strings.Join(r.Keywords, ", "))},
			{Label: "Readability", Value: fmt.Sprintf("%g%%", r.Readability)},
			{Label: "Semantic Score", Value: fmt.Sprintf("%.1f%%", r.SemanticScore*100)},
		},
		Recommendations: r.Recommendations,
	}
}

func buildV2View(r *models.ReportV2) View {
	rows := make([]FactorRow, 0, len(r.Results))
	for _, result := range r.Results {
		deviation := Deviation(result.Value, result.SuggestionValue)

		suggestionValue := "N/A"
		if result.SuggestionValue != nil {
			suggestionValue = fmt.Sprintf("%g", *result.SuggestionValue)
		}

		rows = append(rows, FactorRow{
			Factor:          orNA(result.Factor),
			Value:           result.Value,
			SuggestionValue: suggestionValue,
			Score:           result.Score,
			Deviation:       deviation,
			Band:            Classify(deviation),
			Suggestion:      result.Suggestion,
		})
	}

	return View{
		Title: "Analysis Report",
		Fields: []Field{
			{Label: "Version", Value: orNA(r.Version)},
			{Label: "Mode", Value: orNA(r.Mode)},
			{Label: "Factors Analyzed", Value: fmt.Sprintf("%d", r.FactorsAnalyzed)},
			{Label: "Readability", Value: fmt.Sprintf("%g", r.Readability)},
			{Label: "Semantic Score", Value: fmt.Sprintf("%g", r.SemanticScore)},
		},
		Rows: rows,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Console styles for the colorized report
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle     = lipgloss.NewStyle().Bold(true)
	onTargetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cautionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	offTargetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	detailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func bandStyle(band Band) lipgloss.Style {
	switch band {
	case BandOnTarget:
		return onTargetStyle
	case BandCaution:
		return cautionStyle
	default:
		return offTargetStyle
	}
}

// Render produces the colorized console output for a view.
func (v View) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n\n")

	for _, field := range v.Fields {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(field.Label+":"), field.Value)
	}

	if len(v.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Recommendations:"))
		b.WriteString("\n")
		for i, rec := range v.Recommendations {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
		}
	}

	if len(v.Rows) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Factors:"))
		b.WriteString("\n")
		for _, row := range v.Rows {
			style := bandStyle(row.Band)
			fmt.Fprintf(&b, "  %s %s value=%g suggested=%s score=%g deviation=%.3f",
				style.Render("["+string(row.Band)+"]"),
				row.Factor,
				row.Value,
				row.SuggestionValue,
				row.Score,
				row.Deviation,
			)
			if row.Suggestion != "" {
				fmt.Fprintf(&b, " | %s", row.Suggestion)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderError produces the failure panel. Mutually exclusive with a
// success report.
func RenderError(err *models.AnalysisError) string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Analysis Failed: " + err.Message))
	b.WriteString("\n")
	if err.Details != "" {
		b.WriteString(detailStyle.Render("Details: " + err.Details))
		b.WriteString("\n")
	}

	return b.String()
}
