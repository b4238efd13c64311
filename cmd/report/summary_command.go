package report

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/report"
)

// NewSummaryCommand creates the report summary command
func NewSummaryCommand(service report.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the global review summary",
		Long:  `Show review coverage, manual score averages and reviewer contributions across every translation`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			return withService(cmd.Context(), service, func(ctx context.Context, s report.Service) error {
				summary, err := s.Summary(ctx)
				if err != nil {
					return fmt.Errorf("failed to build summary: %w", err)
				}

				output, err := formatter.FormatSummary(summary)
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
