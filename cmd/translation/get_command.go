package translation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/catalog"
)

// NewGetCommand creates the get translation command
func NewGetCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [TRANSLATION_ID]",
		Short: "Get a translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			translationID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid translation ID: %s", args[0])
			}

			format, _ := cmd.Flags().GetString("format")
			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}
			reviewer := reviewerFlag(cmd)

			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				translation, err := s.GetTranslation(ctx, reviewer, translationID)
				if err != nil {
					return fmt.Errorf("failed to get translation: %w", err)
				}

				output, err := formatter.Format(translation)
				if err != nil {
					return err
				}
				cmd.Println(output)
				return nil
			})
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
