package catalog

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/service/catalog"
)

// NewReviewerCommand creates the reviewer command
func NewReviewerCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviewer",
		Short: "Manage reviewers",
	}

	cmd.AddCommand(newReviewerCreateCommand(service))
	cmd.AddCommand(newReviewerListCommand(service))

	return cmd
}

func newReviewerCreateCommand(service catalog.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [USERNAME] [EMAIL]",
		Short: "Register a reviewer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, _ := cmd.Flags().GetBool("admin")

			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				r, err := s.CreateReviewer(ctx, catalog.ReviewerInput{
					Username: args[0],
					Email:    args[1],
					IsAdmin:  admin,
				})
				if err != nil {
					return fmt.Errorf("failed to create reviewer: %w", err)
				}
				cmd.Printf("Reviewer created successfully (ID: %d)\n", r.ID)
				return nil
			})
		},
	}

	cmd.Flags().Bool("admin", false, "Grant admin rights")

	return cmd
}

func newReviewerListCommand(service catalog.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reviewers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), service, func(ctx context.Context, s catalog.Service) error {
				reviewers, err := s.ListReviewers(ctx)
				if err != nil {
					return fmt.Errorf("failed to list reviewers: %w", err)
				}

				if len(reviewers) == 0 {
					cmd.Println("No reviewers found")
					return nil
				}
				for _, r := range reviewers {
					status := "active"
					if !r.IsActive {
						status = "inactive"
					}
					role := ""
					if r.IsAdmin {
						role = " admin"
					}
					cmd.Printf("%d\t%s\t%s\t%s%s\n", r.ID, r.Username, r.Email, status, role)
				}
				return nil
			})
		},
	}
}
