package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/service/catalog"
)

// NewPromptCommand creates the prompt command
func NewPromptCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Manage prompts",
		Long:  `Register, list, and get the prompts translations were produced with`,
	}

	cmd.AddCommand(newPromptCreateCommand(service))
	cmd.AddCommand(newPromptListCommand(service))
	cmd.AddCommand(newPromptGetCommand(service))

	return cmd
}

func newPromptCreateCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [PROMPT_KEY] [NAME]",
		Short: "Register a prompt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := catalog.PromptInput{Key: args[0], Name: args[1]}
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				input.Description = &description
			}

			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				p, err := s.CreatePrompt(ctx, input)
				if err != nil {
					return fmt.Errorf("failed to create prompt: %w", err)
				}
				cmd.Printf("Prompt created successfully (ID: %d)\n", p.ID)
				return nil
			})
		},
	}

	cmd.Flags().String("description", "", "Prompt description")

	return cmd
}

func newPromptListCommand(service catalog.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				prompts, err := s.ListPrompts(ctx)
				if err != nil {
					return fmt.Errorf("failed to list prompts: %w", err)
				}

				if len(prompts) == 0 {
					cmd.Println("No prompts found")
					return nil
				}
				for _, p := range prompts {
					printPrompt(cmd, p)
					cmd.Println("---")
				}
				return nil
			})
		},
	}
}

func newPromptGetCommand(service catalog.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "get [ID_OR_KEY]",
		Short: "Get a prompt by numeric ID or prompt key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				var (
					p   *model.Prompt
					err error
				)
				if id, convErr := strconv.Atoi(args[0]); convErr == nil {
					p, err = s.GetPrompt(ctx, id)
				} else {
					p, err = s.GetPromptByKey(ctx, args[0])
				}
				if err != nil {
					return fmt.Errorf("failed to get prompt: %w", err)
				}

				printPrompt(cmd, p)
				return nil
			})
		},
	}
}

func printPrompt(cmd *cobra.Command, p *model.Prompt) {
	cmd.Printf("ID: %d\n", p.ID)
	cmd.Printf("Key: %s\n", p.Key)
	cmd.Printf("Name: %s\n", p.Name)
	if p.Description != nil {
		cmd.Printf("Description: %s\n", *p.Description)
	}
}
