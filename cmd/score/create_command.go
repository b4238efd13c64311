package score

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/score"
)

// NewCreateCommand creates the create score command
func NewCreateCommand(service score.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [TRANSLATION_ID]",
		Short: "Score a translation",
		Long:  `Create the reviewer's manual score for a translation. Each reviewer scores a translation once; use update to change it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			translationID, err := parseID(args[0], "translation")
			if err != nil {
				return err
			}

			metrics, notes, err := metricsFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			reviewer := reviewerFlag(cmd)

			return withService(cmd.Context(), service, func(ctx context.Context, s score.Service) error {
				created, err := s.Create(ctx, reviewer, score.CreateInput{
					TranslationID: translationID,
					Metrics:       metrics,
					Notes:         notes,
				})
				if err != nil {
					return fmt.Errorf("failed to create score: %w", err)
				}

				if format == "json" {
					return printJSON(cmd, created)
				}
				cmd.Printf("Score created successfully (ID: %d)\n", created.ID)
				printScore(cmd, created)
				return nil
			})
		},
	}

	addMetricFlags(cmd)
	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
