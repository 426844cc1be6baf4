package maintain

import (
	"context"

	"github.com/fkkmemi/boardsync/internal/server/models"
	"github.com/fkkmemi/boardsync/internal/server/repositories/boards"
)

// FieldMerger maintains the derived union-valued fields on a board: the set
// of categories and tags in use on its articles. The sets only ever grow;
// removing a value from an article never shrinks the board-level set.
type FieldMerger struct {
	boards boards.Repository
}

func NewFieldMerger(repo boards.Repository) *FieldMerger {
	return &FieldMerger{boards: repo}
}

// MergeOnCreate unions a new article's category and tags into the parent
// board's sets. With nothing to merge it is a no-op without a store call.
func (m *FieldMerger) MergeOnCreate(ctx context.Context, article *models.Article) error {

	var categories []string
	if article.Category != "" {
		categories = []string{article.Category}
	}

	if len(categories) == 0 && len(article.Tags) == 0 {
		return nil
	}

	return m.boards.MergeFields(ctx, article.BoardID, categories, article.Tags)
}

// MergeOnUpdate merges the category only when it changed, and the tags
// whenever the new list is non-empty. An update that removes a tag does not
// shrink the board-level set.
func (m *FieldMerger) MergeOnUpdate(ctx context.Context, before, after *models.Article) error {

	var categories []string
	if after.Category != "" && after.Category != before.Category {
		categories = []string{after.Category}
	}

	if len(categories) == 0 && len(after.Tags) == 0 {
		return nil
	}

	return m.boards.MergeFields(ctx, after.BoardID, categories, after.Tags)
}
