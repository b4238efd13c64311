package admin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/repository/maintenance"
	"github.com/Taichi-iskw/transqa/internal/service/admin"
)

// ReviewerEnv names the environment variable holding the default reviewer
const ReviewerEnv = "TRANSQA_REVIEWER"

// NewAdminCommand creates the admin command
func NewAdminCommand(service admin.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative maintenance",
		Long:  `Maintenance operations restricted to admin reviewers`,
	}

	cmd.PersistentFlags().String("reviewer", os.Getenv(ReviewerEnv), "Admin reviewer username (defaults to $"+ReviewerEnv+")")

	cmd.AddCommand(NewCleanCommand(service))

	return cmd
}

// NewCleanCommand creates the admin clean command
func NewCleanCommand(service admin.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete all prompts, translations and manual scores",
		Long: fmt.Sprintf(`Truncate %s. Reviewers are kept.
This cannot be undone.`, strings.Join(maintenance.CleanedTables, ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			reviewer := cmd.Flag("reviewer").Value.String()

			if !force {
				cmd.Printf("Delete all data from %s? Type 'yes' to confirm: ", strings.Join(maintenance.CleanedTables, ", "))
				var response string
				fmt.Fscanln(cmd.InOrStdin(), &response)

				if strings.ToLower(response) != "yes" {
					cmd.Println("Operation cancelled")
					return nil
				}
			}

			return withService(cmd.Context(), service, func(ctx context.Context, s admin.Service) error {
				tables, err := s.CleanTables(ctx, reviewer)
				if err != nil {
					return fmt.Errorf("failed to clean tables: %w", err)
				}

				cmd.Println("All tables have been cleaned successfully")
				for _, table := range tables {
					cmd.Printf("  %s\n", table)
				}
				return nil
			})
		},
	}

	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")

	return cmd
}
