package translation

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/catalog"
)

// ReviewerEnv names the environment variable holding the default reviewer
const ReviewerEnv = "TRANSQA_REVIEWER"

// NewTranslationCommand creates the main translation command
func NewTranslationCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translation",
		Short: "Browse translations",
		Long:  `List and get imported translations together with your own manual score, and list import executions`,
	}

	cmd.PersistentFlags().String("reviewer", os.Getenv(ReviewerEnv), "Reviewer username whose score is shown (defaults to $"+ReviewerEnv+")")

	cmd.AddCommand(NewGetCommand(service))
	cmd.AddCommand(NewListCommand(service))
	cmd.AddCommand(NewExecutionsCommand(service))

	return cmd
}
