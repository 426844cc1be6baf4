package boards

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

// MergeFields performs the set union in a single statement so concurrent
// article writes to the same board stay commutative.
func (r *PostgresRepository) MergeFields(ctx context.Context, boardID string, categories, tags []string) error {

	query :=
		`UPDATE boards
		 SET categories = (SELECT COALESCE(array_agg(DISTINCT c), '{}') FROM unnest(categories || $2::text[]) AS c),
		     tags = (SELECT COALESCE(array_agg(DISTINCT t), '{}') FROM unnest(tags || $3::text[]) AS t)
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, boardID, categories, tags)
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
