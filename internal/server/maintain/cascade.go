package maintain

import (
	"context"
	"fmt"

	"github.com/fkkmemi/boardsync/internal/server/blobstore"
	"github.com/fkkmemi/boardsync/internal/server/repositories/articles"
	"github.com/fkkmemi/boardsync/internal/server/repositories/comments"
)

// CascadeCoordinator removes the dependent children of a deleted parent:
// a board's articles, an article's comments and an article's blobs. Each
// removal is its own pipeline step so one failing class of dependents never
// blocks the others.
type CascadeCoordinator struct {
	articles articles.Repository
	comments comments.Repository
	blobs    blobstore.Store
}

func NewCascadeCoordinator(ar articles.Repository, cr comments.Repository, blobs blobstore.Store) *CascadeCoordinator {
	return &CascadeCoordinator{articles: ar, comments: cr, blobs: blobs}
}

// RemoveBoardArticles batch-deletes the board's articles. The children's
// own counters are not individually reversed: the parent counter scope is
// being destroyed wholesale.
func (c *CascadeCoordinator) RemoveBoardArticles(ctx context.Context, boardID string) error {
	if err := c.articles.DeleteByBoard(ctx, boardID); err != nil {
		return fmt.Errorf("article cascade: %w", err)
	}
	return nil
}

func (c *CascadeCoordinator) RemoveArticleComments(ctx context.Context, articleID string) error {
	if err := c.comments.DeleteByArticle(ctx, articleID); err != nil {
		return fmt.Errorf("comment cascade: %w", err)
	}
	return nil
}

func (c *CascadeCoordinator) RemoveArticleContent(ctx context.Context, boardID, articleID, uid string) error {
	if err := c.blobs.Delete(ctx, contentPath(boardID, articleID, uid)); err != nil {
		return fmt.Errorf("content blob: %w", err)
	}
	return nil
}

// RemoveArticleImages bulk-deletes everything under the article's image
// prefix. An article without images is a no-op.
func (c *CascadeCoordinator) RemoveArticleImages(ctx context.Context, boardID, articleID string) error {
	if err := c.blobs.DeletePrefix(ctx, imagePrefix(boardID, articleID)); err != nil {
		return fmt.Errorf("image blobs: %w", err)
	}
	return nil
}
