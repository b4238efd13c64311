package score

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/score"
)

// ReviewerEnv names the environment variable holding the default reviewer
const ReviewerEnv = "TRANSQA_REVIEWER"

// NewScoreCommand creates the main score command
func NewScoreCommand(service score.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Manage manual scores",
		Long:  `Create, update, get, and delete the manual scores a reviewer gives to translations`,
	}

	cmd.PersistentFlags().String("reviewer", os.Getenv(ReviewerEnv), "Reviewer username (defaults to $"+ReviewerEnv+")")

	cmd.AddCommand(NewCreateCommand(service))
	cmd.AddCommand(NewUpdateCommand(service))
	cmd.AddCommand(NewGetCommand(service))
	cmd.AddCommand(NewDeleteCommand(service))

	return cmd
}

// reviewerFlag reads --reviewer from the command or its parents
func reviewerFlag(cmd *cobra.Command) string {
	if f := cmd.Flag("reviewer"); f != nil {
		return f.Value.String()
	}
	return os.Getenv(ReviewerEnv)
}
