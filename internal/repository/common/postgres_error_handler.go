package common

import (
	"errors"
	"strings"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// HandlePostgreSQLError converts PostgreSQL-specific errors to appropriate AppError codes
func HandlePostgreSQLError(err error, operation string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.Wrap(err, apperrors.CodeInternal, operation)
	}

	switch pgErr.Code {
	case "23505": // UNIQUE_VIOLATION
		return handleUniqueViolation(pgErr)

	case "23503": // FOREIGN_KEY_VIOLATION
		return handleForeignKeyViolation(pgErr)

	case "23502": // NOT_NULL_VIOLATION
		return apperrors.Wrap(err, apperrors.CodeInvalidArg, "required field is missing")

	case "23514": // CHECK_VIOLATION
		return apperrors.Wrap(err, apperrors.CodeInvalidArg, "score values must be between 0 and 1")

	case "42P01": // UNDEFINED_TABLE
		return apperrors.Wrap(err, apperrors.CodeInternal, "database schema error: table not found (run 'transqa migrate up')")

	case "42703": // UNDEFINED_COLUMN
		return apperrors.Wrap(err, apperrors.CodeInternal, "database schema error: column not found")

	case "08000", "08003", "08006": // CONNECTION_EXCEPTION variants
		return apperrors.Wrap(err, apperrors.CodeInternal, "database connection error")

	case "53300": // TOO_MANY_CONNECTIONS
		return apperrors.Wrap(err, apperrors.CodeInternal, "database connection limit reached")

	default:
		message := operation + " (PostgreSQL code: " + pgErr.Code + ")"
		return apperrors.Wrap(err, apperrors.CodeInternal, message)
	}
}

// NotFoundOr maps pgx.ErrNoRows to NOT_FOUND with the given message and
// everything else through HandlePostgreSQLError
func NotFoundOr(err error, notFound, operation string) *apperrors.AppError {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.Wrap(err, apperrors.CodeNotFound, notFound)
	}
	return HandlePostgreSQLError(err, operation)
}

// handleUniqueViolation provides specific error messages for different unique constraints
func handleUniqueViolation(pgErr *pgconn.PgError) *apperrors.AppError {
	constraintName := pgErr.ConstraintName

	switch {
	case strings.Contains(constraintName, "translation_reviewer"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "score already exists, use update")
	case strings.Contains(constraintName, "prompt_key"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "prompt with this ID already exists")
	case strings.Contains(constraintName, "username"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "reviewer with this username already exists")
	case strings.Contains(constraintName, "email"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "reviewer with this email already exists")
	case strings.Contains(constraintName, "pkey"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "resource with this ID already exists")
	default:
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "resource already exists")
	}
}

// handleForeignKeyViolation provides specific error messages for foreign key constraints
func handleForeignKeyViolation(pgErr *pgconn.PgError) *apperrors.AppError {
	constraintName := pgErr.ConstraintName

	switch {
	case strings.Contains(constraintName, "reviewer_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced reviewer does not exist")
	case strings.Contains(constraintName, "translation_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced translation does not exist")
	case strings.Contains(constraintName, "prompt_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced prompt does not exist")
	default:
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced resource does not exist")
	}
}
