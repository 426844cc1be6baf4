package articles

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

func (r *PostgresRepository) DeleteByBoard(ctx context.Context, boardID string) error {

	query := `DELETE FROM articles WHERE board_id = $1`

	if _, err := r.db.ExecContext(ctx, query, boardID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
