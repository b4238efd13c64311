package score

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/service/score"
)

// NewGetCommand creates the get score command
func NewGetCommand(service score.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [SCORE_ID]",
		Short: "Get a score",
		Long:  `Get a score by ID, or with --translation the reviewer's own score of that translation`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			translationID, _ := cmd.Flags().GetInt("translation")
			format, _ := cmd.Flags().GetString("format")
			reviewer := reviewerFlag(cmd)

			if len(args) == 0 && translationID == 0 {
				return fmt.Errorf("either SCORE_ID or --translation is required")
			}

			var scoreID int
			if len(args) == 1 {
				id, err := parseID(args[0], "score")
				if err != nil {
					return err
				}
				scoreID = id
			}

			return withService(cmd.Context(), service, func(ctx context.Context, s score.Service) error {
				var (
					found *model.ManualScore
					err   error
				)
				if scoreID > 0 {
					found, err = s.Get(ctx, scoreID)
				} else {
					found, err = s.GetForTranslation(ctx, reviewer, translationID)
				}
				if err != nil {
					return fmt.Errorf("failed to get score: %w", err)
				}

				if format == "json" {
					return printJSON(cmd, found)
				}
				printScore(cmd, found)
				return nil
			})
		},
	}

	cmd.Flags().Int("translation", 0, "Get the reviewer's score of this translation instead")
	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
