package score

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/score"
)

// NewUpdateCommand creates the update score command
func NewUpdateCommand(service score.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [SCORE_ID]",
		Short: "Update a score",
		Long:  `Update the given metrics of a score. Metrics not passed on the command line are left unchanged.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scoreID, err := parseID(args[0], "score")
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
				updated, err := s.Update(ctx, reviewer, scoreID, score.UpdateInput{
					Coherence:   metrics.Coherence,
					Fidelity:    metrics.Fidelity,
					Naturalness: metrics.Naturalness,
					Overall:     metrics.Overall,
					Notes:       notes,
				})
				if err != nil {
					return fmt.Errorf("failed to update score: %w", err)
				}

				if format == "json" {
					return printJSON(cmd, updated)
				}
				cmd.Printf("Score %d updated successfully\n", updated.ID)
				printScore(cmd, updated)
				return nil
			})
		},
	}

	addMetricFlags(cmd)
	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
