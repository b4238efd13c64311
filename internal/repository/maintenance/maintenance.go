package maintenance

import "context"

// CleanedTables lists the tables Clean empties, dependents first.
// Reviewers are kept.
var CleanedTables = []string{"manual_scores", "translations", "prompts"}

// Repository defines destructive maintenance operations on the record store
type Repository interface {
	// Clean truncates CleanedTables in one transaction and returns their names
	Clean(ctx context.Context) ([]string, error)
}
