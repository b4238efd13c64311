package score

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/score"
)

// NewDeleteCommand creates the delete score command
func NewDeleteCommand(service score.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [SCORE_ID]",
		Short: "Delete a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scoreID, err := parseID(args[0], "score")
			if err != nil {
				return err
			}
			reviewer := reviewerFlag(cmd)

			return withService(cmd.Context(), service, func(ctx context.Context, s score.Service) error {
				if err := s.Delete(ctx, reviewer, scoreID); err != nil {
					return fmt.Errorf("failed to delete score: %w", err)
				}
				cmd.Printf("Score %d deleted successfully\n", scoreID)
				return nil
			})
		},
	}

	return cmd
}
