package report

import (
	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/report"
)

// NewReportCommand creates the main report command
func NewReportCommand(service report.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show translation quality reports",
		Long:  `Aggregate automated and manual scores per execution and prompt, or across every translation`,
	}

	cmd.AddCommand(NewListCommand(service))
	cmd.AddCommand(NewGroupCommand(service))
	cmd.AddCommand(NewSummaryCommand(service))

	return cmd
}
