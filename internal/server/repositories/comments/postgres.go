package comments

import (
	"context"
	"fmt"

	"github.com/fkkmemi/boardsync/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) DeleteByArticle(ctx context.Context, articleID string) error {

	query := `DELETE FROM comments WHERE article_id = $1`

	if _, err := r.db.ExecContext(ctx, query, articleID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
