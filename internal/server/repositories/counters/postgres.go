package counters

import (
	"context"
	"fmt"

	"github.com/fkkmemi/boardsync/internal/common"
	"github.com/fkkmemi/boardsync/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func metaName(kind Kind) string {
	if kind == KindUsers {
		return "users"
	}
	return "boards"
}

func (r *PostgresRepository) Increment(ctx context.Context, key Key, delta int64) error {

	var query string
	var args []any

	switch key.Kind {
	case KindUsers, KindBoards:
		query = `UPDATE meta SET count = count + $2 WHERE name = $1`
		args = []any{metaName(key.Kind), delta}
	case KindBoardArticles:
		query = `UPDATE boards SET article_count = article_count + $2 WHERE id = $1`
		args = []any{key.BoardID, delta}
	case KindArticleComments:
		query = `UPDATE articles SET comment_count = comment_count + $3 WHERE board_id = $1 AND id = $2`
		args = []any{key.BoardID, key.ArticleID, delta}
	default:
		return fmt.Errorf("unknown counter kind: %d", key.Kind)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, key Key, initial int64) error {

	switch key.Kind {
	case KindUsers, KindBoards:
	default:
		return common.ErrorCannotCreate
	}

	query := `INSERT INTO meta (name, count) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, metaName(key.Kind), initial); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
