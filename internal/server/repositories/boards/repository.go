package boards

import "context"

type Repository interface {
	// MergeFields unions the given categories and tags into the board's
	// derived sets. Passing empty slices leaves the corresponding set
	// untouched; duplicates are no-ops.
	MergeFields(ctx context.Context, boardID string, categories, tags []string) error
}
