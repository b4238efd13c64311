package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/quality"
)

// Formatter defines interface for report output formatting
type Formatter interface {
	FormatReports(reports []quality.ExecutionReport) (string, error)
	FormatGroup(report *quality.ExecutionReport) (string, error)
	FormatSummary(summary *quality.GlobalSummary) (string, error)
}

// TextFormatter formats reports as aligned plain text
type TextFormatter struct{}

// FormatReports formats every report followed by a separator
func (f *TextFormatter) FormatReports(reports []quality.ExecutionReport) (string, error) {
	if len(reports) == 0 {
		return "No translations found\n", nil
	}

	var output strings.Builder
	for i := range reports {
		writeReport(&output, &reports[i])
		output.WriteString("---\n")
	}
	return output.String(), nil
}

// FormatGroup formats a single report
func (f *TextFormatter) FormatGroup(report *quality.ExecutionReport) (string, error) {
	var output strings.Builder
	writeReport(&output, report)
	return output.String(), nil
}

// FormatSummary formats the global summary
func (f *TextFormatter) FormatSummary(summary *quality.GlobalSummary) (string, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Total Translations: %d\n", summary.TotalTranslations))
	output.WriteString(fmt.Sprintf("Reviewed: %d (%.2f%%)\n", summary.TranslationsReviewed, summary.ReviewPercentage))
	output.WriteString("\nAverage Manual Scores:\n")
	for _, metric := range model.AllMetrics {
		output.WriteString(fmt.Sprintf("  %-12s %s\n", metric, formatValue(summary.Manual.Get(metric), 3)))
	}

	output.WriteString("\nContributors:\n")
	if len(summary.Contributors) == 0 {
		output.WriteString("  (none)\n")
	}
	for i, c := range summary.Contributors {
		output.WriteString(fmt.Sprintf("  %d. %s (%d)\n", i+1, c.Username, c.Contributions))
	}

	return output.String(), nil
}

func writeReport(output *strings.Builder, r *quality.ExecutionReport) {
	output.WriteString(fmt.Sprintf("Execution: %s\n", r.ExecutionID))
	output.WriteString(fmt.Sprintf("Prompt: %s (ID %d)\n", r.PromptName, r.PromptID))
	output.WriteString(fmt.Sprintf("Translations: %d, with manual scores: %d (%.2f%%)\n",
		r.TotalTranslations, r.TranslationsWithManualScores, r.ManualScorePercentage))
	output.WriteString(fmt.Sprintf("  %-12s %9s %9s %9s\n", "metric", "automated", "manual", "combined"))
	for _, metric := range model.AllMetrics {
		output.WriteString(fmt.Sprintf("  %-12s %9s %9s %9s\n",
			metric,
			formatValue(r.Automated.Get(metric), 2),
			formatValue(r.Manual.Get(metric), 2),
			formatValue(r.Combined.Get(metric), 2),
		))
	}
}

// formatValue renders an absent metric as "-"
func formatValue(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

// JSONFormatter formats reports as indented JSON
type JSONFormatter struct{}

// FormatReports formats reports as a JSON array
func (f *JSONFormatter) FormatReports(reports []quality.ExecutionReport) (string, error) {
	if reports == nil {
		reports = []quality.ExecutionReport{}
	}
	return marshal(reports)
}

// FormatGroup formats a single report as a JSON object
func (f *JSONFormatter) FormatGroup(report *quality.ExecutionReport) (string, error) {
	return marshal(report)
}

// FormatSummary formats the summary as a JSON object
func (f *JSONFormatter) FormatSummary(summary *quality.GlobalSummary) (string, error) {
	return marshal(summary)
}

func marshal(v any) (string, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(jsonBytes) + "\n", nil
}

// GetFormatter returns appropriate formatter based on format string
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "text", "":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
