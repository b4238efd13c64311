// Package access resolves the reviewer a command acts on behalf of.
package access

import (
	"context"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/model"
)

// ReviewerLookup is the part of the reviewer repository needed to resolve a caller
type ReviewerLookup interface {
	GetByUsername(ctx context.Context, username string) (*model.Reviewer, error)
}

// Active returns the named reviewer if it exists and is active
func Active(ctx context.Context, reviewers ReviewerLookup, username string) (*model.Reviewer, error) {
	if username == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "reviewer is required")
	}
	rev, err := reviewers.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !rev.IsActive {
		return nil, apperrors.New(apperrors.CodePermissionDenied, "reviewer is inactive")
	}
	return rev, nil
}

// Admin is Active plus the admin flag
func Admin(ctx context.Context, reviewers ReviewerLookup, username string) (*model.Reviewer, error) {
	rev, err := Active(ctx, reviewers, username)
	if err != nil {
		return nil, err
	}
	if !rev.IsAdmin {
		return nil, apperrors.New(apperrors.CodePermissionDenied, "admin access required")
	}
	return rev, nil
}
