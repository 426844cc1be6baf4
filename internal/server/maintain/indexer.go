package maintain

import (
	"context"
	"fmt"

	"github.com/fkkmemi/boardsync/internal/server/models"
	"github.com/fkkmemi/boardsync/internal/server/searchindex"
)

// SearchSynchronizer projects an article's public fields into the hosted
// search index on creation. The call is advisory: a missed projection is a
// missed index update until the next write, nothing more. There is no
// synchronizer on update or delete.
type SearchSynchronizer struct {
	index searchindex.Indexer
}

func NewSearchSynchronizer(index searchindex.Indexer) *SearchSynchronizer {
	return &SearchSynchronizer{index: index}
}

func (s *SearchSynchronizer) ProjectArticle(ctx context.Context, boardID, articleID string, article *models.Article) error {

	doc := &models.SearchDoc{
		BoardID:      boardID,
		ArticleID:    articleID,
		CreatedAt:    article.CreatedAt,
		Title:        article.Title,
		Content:      article.Summary,
		Email:        article.User.Email,
		DisplayName:  article.User.DisplayName,
		Category:     article.Category,
		Tags:         article.Tags,
		ReadCount:    article.ReadCount,
		CommentCount: article.CommentCount,
		LikeCount:    article.LikeCount,
	}

	if err := s.index.SaveArticle(ctx, doc); err != nil {
		return fmt.Errorf("search projection: %w", err)
	}

	return nil
}
