package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/report"
)

// NewGroupCommand creates the report group command
func NewGroupCommand(service report.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group [EXECUTION_ID] [PROMPT_ID]",
		Short: "Show the report of one execution and prompt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			executionID := args[0]
			promptID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid prompt ID %q: %w", args[1], err)
			}

			format, _ := cmd.Flags().GetString("format")
			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			return withService(cmd.Context(), service, func(ctx context.Context, s report.Service) error {
				r, err := s.Group(ctx, executionID, promptID)
				if err != nil {
					return fmt.Errorf("failed to build report: %w", err)
				}

				output, err := formatter.FormatGroup(r)
				if err != nil {
					return err
				}
				cmd.Print(output)
				return nil
			})
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
