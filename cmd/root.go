package cmd

import (
	"os"

	"github.com/spf13/cobra"

	admincmd "github.com/Taichi-iskw/transqa/cmd/admin"
	catalogcmd "github.com/Taichi-iskw/transqa/cmd/catalog"
	importcmd "github.com/Taichi-iskw/transqa/cmd/importer"
	reportcmd "github.com/Taichi-iskw/transqa/cmd/report"
	scorecmd "github.com/Taichi-iskw/transqa/cmd/score"
	translationcmd "github.com/Taichi-iskw/transqa/cmd/translation"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transqa",
	Short: "Translation quality tracking",
	Long: `transqa tracks machine translations with their automated quality scores,
lets reviewers add manual scores, and reports combined quality per execution and prompt.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// nil services make each command build its own from the configuration
	rootCmd.AddCommand(reportcmd.NewReportCommand(nil))
	rootCmd.AddCommand(scorecmd.NewScoreCommand(nil))
	rootCmd.AddCommand(translationcmd.NewTranslationCommand(nil))
	rootCmd.AddCommand(catalogcmd.NewPromptCommand(nil))
	rootCmd.AddCommand(catalogcmd.NewReviewerCommand(nil))
	rootCmd.AddCommand(importcmd.NewImportCommand(nil))
	rootCmd.AddCommand(admincmd.NewAdminCommand(nil))
}
