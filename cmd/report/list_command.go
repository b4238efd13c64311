package report

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/quality"
	"github.com/Taichi-iskw/transqa/internal/service/report"
)

// NewListCommand creates the report list command
func NewListCommand(service report.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List execution reports",
		Long:  `List one report per (execution, prompt) group with automated, manual and combined averages`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			var filter quality.ReportFilter
			filter.ExecutionID, _ = cmd.Flags().GetString("execution")
			filter.PromptID, _ = cmd.Flags().GetInt("prompt")
			filter.ManualOnly, _ = cmd.Flags().GetBool("manual-only")

			return withService(cmd.Context(), service, func(ctx context.Context, s report.Service) error {
				reports, err := s.Reports(ctx, filter)
				if err != nil {
					return fmt.Errorf("failed to build reports: %w", err)
				}

				output, err := formatter.FormatReports(reports)
				if err != nil {
					return err
				}
				cmd.Print(output)
				return nil
			})
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, json)")
	cmd.Flags().String("execution", "", "Only report this execution ID")
	cmd.Flags().Int("prompt", 0, "Only report this prompt ID")
	cmd.Flags().Bool("manual-only", false, "Only include translations with at least one manual score")

	return cmd
}
