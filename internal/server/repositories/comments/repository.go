package comments

import "context"

type Repository interface {
	// DeleteByArticle removes every comment of the article in one batch
	// statement. Zero children is a no-op.
	DeleteByArticle(ctx context.Context, articleID string) error
}
