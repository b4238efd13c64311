package translation

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/service/catalog"
)

// NewListCommand creates the list translations command
func NewListCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")

			var filter model.TranslationFilter
			filter.ExecutionID, _ = cmd.Flags().GetString("execution")
			filter.PromptID, _ = cmd.Flags().GetInt("prompt")
			reviewer := reviewerFlag(cmd)

			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				translations, err := s.ListTranslations(ctx, reviewer, filter, limit, offset)
				if err != nil {
					return fmt.Errorf("failed to list translations: %w", err)
				}

				if len(translations) == 0 {
					cmd.Println("No translations found")
					return nil
				}

				for _, t := range translations {
					cmd.Printf("ID: %d\n", t.ID)
					cmd.Printf("Execution: %s\n", t.ExecutionID)
					cmd.Printf("Prompt ID: %d\n", t.PromptID)
					cmd.Printf("Languages: %s -> %s\n", t.SourceLanguage, t.TargetLanguage)
					cmd.Printf("Original: %s\n", truncateString(t.OriginalContent, 100))
					cmd.Printf("Translated: %s\n", truncateString(t.TranslatedContent, 100))
					if t.ManualScore != nil {
						cmd.Printf("Your Score: %d\n", t.ManualScore.ID)
					} else {
						cmd.Println("Your Score: not scored")
					}
					cmd.Println("---")
				}

				return nil
			})
		},
	}

	cmd.Flags().Int("limit", 100, "Maximum number of translations to list")
	cmd.Flags().Int("offset", 0, "Number of translations to skip")
	cmd.Flags().String("execution", "", "Only list this execution ID")
	cmd.Flags().Int("prompt", 0, "Only list this prompt ID")

	return cmd
}
