package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/importer"
)

// ReviewerEnv names the environment variable holding the default reviewer
const ReviewerEnv = "TRANSQA_REVIEWER"

// NewImportCommand creates the import command
func NewImportCommand(service importer.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import translations from the object store",
		Long: `Upload local en/ and es/ JSON files to a bucket prefix, validate a prefix, and
load the pairs under it as one execution. Requires an admin reviewer.`,
	}

	cmd.PersistentFlags().String("reviewer", os.Getenv(ReviewerEnv), "Admin reviewer username (defaults to $"+ReviewerEnv+")")

	cmd.AddCommand(NewValidateCommand(service))
	cmd.AddCommand(NewLoadCommand(service))
	cmd.AddCommand(NewUploadCommand(service))

	return cmd
}

// NewValidateCommand creates the import validate command
func NewValidateCommand(service importer.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [PREFIX]",
		Short: "Check that a prefix holds en/ and es/ folders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			reviewer := reviewerFlag(cmd)

			return withService(cmd.Context(), service, 0, func(ctx context.Context, s importer.Service) error {
				v, err := s.ValidatePrefix(ctx, reviewer, args[0])
				if err != nil {
					return fmt.Errorf("failed to validate prefix: %w", err)
				}

				if format == "json" {
					return printJSON(cmd, v)
				}

				cmd.Printf("Valid: %t\n", v.Valid)
				cmd.Printf("Message: %s\n", v.Message)
				cmd.Printf("en/ folder: %t\n", v.HasEnFolder)
				cmd.Printf("es/ folder: %t\n", v.HasEsFolder)
				if len(v.SampleFiles) > 0 {
					cmd.Println("Sample files:")
					for _, f := range v.SampleFiles {
						cmd.Printf("  %s\n", f)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}

// NewLoadCommand creates the import load command
func NewLoadCommand(service importer.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [PREFIX]",
		Short: "Load translation pairs under a prefix",
		Long: `Load every en/<name>.json and es/<name>.json pair under PREFIX as one execution.
The execution ID is derived from the prefix and description, so the same
prefix and description can only be loaded once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			format, _ := cmd.Flags().GetString("format")
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			reviewer := reviewerFlag(cmd)

			spec := importer.PromptSpec{}
			spec.Key, _ = cmd.Flags().GetString("prompt-key")
			spec.Name, _ = cmd.Flags().GetString("prompt-name")
			if cmd.Flags().Changed("prompt-description") {
				d, _ := cmd.Flags().GetString("prompt-description")
				spec.Description = &d
			}

			return withService(cmd.Context(), service, concurrency, func(ctx context.Context, s importer.Service) error {
				result, err := s.Load(ctx, reviewer, args[0], description, spec)
				if err != nil {
					return fmt.Errorf("failed to load translations: %w", err)
				}

				if format == "json" {
					return printJSON(cmd, result)
				}

				cmd.Println("Translations loaded successfully")
				cmd.Printf("Execution ID: %s\n", result.ExecutionID)
				cmd.Printf("Translations loaded: %d\n", result.TranslationsLoaded)
				cmd.Printf("Prompts created: %d\n", result.PromptsCreated)
				if result.Skipped > 0 {
					cmd.Printf("Pairs skipped: %d\n", result.Skipped)
				}
				return nil
			})
		},
	}

	cmd.Flags().String("description", "", "Execution description")
	cmd.Flags().String("prompt-key", "prompt_001", "Key of the prompt the batch was produced with")
	cmd.Flags().String("prompt-name", "Monthly Insights Translation", "Name used when the prompt does not exist yet")
	cmd.Flags().String("prompt-description", "", "Description used when the prompt does not exist yet")
	cmd.Flags().Int("concurrency", importer.DefaultConcurrency, "Maximum parallel object fetches")
	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}

// NewUploadCommand creates the import upload command
func NewUploadCommand(service importer.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [DIR] [PREFIX]",
		Short: "Upload local en/ and es/ JSON files to a prefix",
		Long: `Upload DIR/en/*.json and DIR/es/*.json to PREFIX/en/ and PREFIX/es/ in the
configured bucket, ready for 'transqa import load PREFIX'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, prefix := args[0], args[1]
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("failed to read directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			format, _ := cmd.Flags().GetString("format")
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			reviewer := reviewerFlag(cmd)

			return withService(cmd.Context(), service, concurrency, func(ctx context.Context, s importer.Service) error {
				result, err := s.Upload(ctx, reviewer, os.DirFS(dir), prefix)
				if err != nil {
					return fmt.Errorf("failed to upload files: %w", err)
				}

				if format == "json" {
					return printJSON(cmd, result)
				}

				cmd.Printf("Uploaded %d objects to %s\n", result.Uploaded, result.Prefix)
				for _, key := range result.Keys {
					cmd.Printf("  %s\n", key)
				}
				return nil
			})
		},
	}

	cmd.Flags().Int("concurrency", importer.DefaultConcurrency, "Maximum parallel uploads")
	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}

// reviewerFlag reads --reviewer from the command or its parents
func reviewerFlag(cmd *cobra.Command) string {
	if f := cmd.Flag("reviewer"); f != nil {
		return f.Value.String()
	}
	return os.Getenv(ReviewerEnv)
}

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format as JSON: %w", err)
	}
	cmd.Println(string(output))
	return nil
}
