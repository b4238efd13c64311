package score

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/model"
)

func printScore(cmd *cobra.Command, s *model.ManualScore) {
	cmd.Printf("Score ID: %d\n", s.ID)
	cmd.Printf("Translation ID: %d\n", s.TranslationID)
	cmd.Printf("Reviewer ID: %d\n", s.ReviewerID)
	for _, metric := range model.AllMetrics {
		if v := s.Get(metric); v != nil {
			cmd.Printf("%s: %.2f\n", metric, *v)
		} else {
			cmd.Printf("%s: -\n", metric)
		}
	}
	if s.Notes != nil && *s.Notes != "" {
		cmd.Printf("Notes: %s\n", *s.Notes)
	}
	if !s.CreatedAt.IsZero() {
		cmd.Printf("Created: %s\n", s.CreatedAt.Format(time.RFC3339))
	}
	if s.UpdatedAt != nil {
		cmd.Printf("Updated: %s\n", s.UpdatedAt.Format(time.RFC3339))
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format as JSON: %w", err)
	}
	cmd.Println(string(output))
	return nil
}
