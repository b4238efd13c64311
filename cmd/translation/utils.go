package translation

import (
	"os"

	"github.com/spf13/cobra"
)

// truncateString truncates a string to the specified number of runes
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// reviewerFlag reads --reviewer from the command or its parents
func reviewerFlag(cmd *cobra.Command) string {
	if f := cmd.Flag("reviewer"); f != nil {
		return f.Value.String()
	}
	return os.Getenv(ReviewerEnv)
}
