package translation

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/catalog"
)

// NewExecutionsCommand creates the list executions command
func NewExecutionsCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "executions",
		Short: "List import executions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				executions, err := s.ListExecutions(ctx)
				if err != nil {
					return fmt.Errorf("failed to list executions: %w", err)
				}

				if len(executions) == 0 {
					cmd.Println("No executions found")
					return nil
				}

				for _, e := range executions {
					cmd.Printf("Execution: %s\n", e.ExecutionID)
					cmd.Printf("Translations: %d\n", e.Count)
					if e.LatestDate != nil {
						cmd.Printf("Latest: %s\n", e.LatestDate.Format("2006-01-02 15:04:05"))
					}
					if e.Description != nil {
						cmd.Printf("Description: %s\n", *e.Description)
					}
					cmd.Println("---")
				}
				return nil
			})
		},
	}

	return cmd
}
