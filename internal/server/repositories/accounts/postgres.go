package accounts

import (
	"context"
	"fmt"

	"github.com/fkkmemi/boardsync/internal/dbx"
	"github.com/fkkmemi/boardsync/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save writes the account record, replacing any previous copy so a
// redelivered creation event converges on the same state.
func (r *PostgresRepository) Save(ctx context.Context, account *models.Account) error {

	query :=
		`INSERT INTO accounts (uid, email, display_name, photo_url, level, created_at, visited_at, visit_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (uid) DO UPDATE
		 SET email = EXCLUDED.email,
		     display_name = EXCLUDED.display_name,
		     photo_url = EXCLUDED.photo_url,
		     level = EXCLUDED.level,
		     created_at = EXCLUDED.created_at,
		     visited_at = EXCLUDED.visited_at,
		     visit_count = EXCLUDED.visit_count
		 `

	_, err := r.db.ExecContext(ctx, query,
		account.UID, account.Email, account.DisplayName, account.PhotoURL,
		account.Level, account.CreatedAt, account.VisitedAt, account.VisitCount)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// Delete removes the account record. An absent record is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, uid string) error {

	query := `DELETE FROM accounts WHERE uid = $1`

	if _, err := r.db.ExecContext(ctx, query, uid); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
