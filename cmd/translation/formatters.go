package translation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Taichi-iskw/transqa/internal/model"
)

// Formatter defines interface for output formatting
type Formatter interface {
	Format(translation *model.TranslationWithScore) (string, error)
}

// TextFormatter formats output as plain text
type TextFormatter struct{}

// Format formats translation as plain text
func (f *TextFormatter) Format(translation *model.TranslationWithScore) (string, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Translation ID: %d\n", translation.ID))
	output.WriteString(fmt.Sprintf("Execution: %s\n", translation.ExecutionID))
	output.WriteString(fmt.Sprintf("Prompt ID: %d\n", translation.PromptID))
	output.WriteString(fmt.Sprintf("Languages: %s -> %s\n", translation.SourceLanguage, translation.TargetLanguage))
	output.WriteString(fmt.Sprintf("Created At: %s\n", translation.CreatedAt.Format(time.RFC3339)))
	output.WriteString("\n")

	output.WriteString("Automated Scores:\n")
	writeMetrics(&output, translation.Automated)

	if translation.ManualScore != nil {
		output.WriteString(fmt.Sprintf("\nYour Score (ID %d):\n", translation.ManualScore.ID))
		writeMetrics(&output, translation.ManualScore.Metrics)
		if translation.ManualScore.Notes != nil {
			output.WriteString(fmt.Sprintf("  notes: %s\n", *translation.ManualScore.Notes))
		}
	}

	output.WriteString("\nOriginal:\n")
	output.WriteString("========\n")
	output.WriteString(translation.OriginalContent)
	output.WriteString("\n\nTranslated:\n")
	output.WriteString("==========\n")
	output.WriteString(translation.TranslatedContent)

	return output.String(), nil
}

func writeMetrics(output *strings.Builder, m model.Metrics) {
	for _, metric := range model.AllMetrics {
		if v := m.Get(metric); v != nil {
			output.WriteString(fmt.Sprintf("  %s: %.2f\n", metric, *v))
		} else {
			output.WriteString(fmt.Sprintf("  %s: -\n", metric))
		}
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct{}

// Format formats translation as JSON
func (f *JSONFormatter) Format(translation *model.TranslationWithScore) (string, error) {
	jsonBytes, err := json.MarshalIndent(translation, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return string(jsonBytes), nil
}

// GetFormatter returns the appropriate formatter based on format string
func GetFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
