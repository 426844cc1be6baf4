package tempfiles

import (
	"context"
	"fmt"
	"time"

	"github.com/fkkmemi/boardsync/internal/dbx"
	"github.com/fkkmemi/boardsync/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, file *models.TempFile) error {

	query :=
		`INSERT INTO temp_files (id, blob_id, name, content_type, size, crc32c, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.BlobID, file.Name, file.ContentType, file.Size, file.Checksum, file.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteByBlobIDs(ctx context.Context, ids []string) error {

	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM temp_files WHERE blob_id = ANY($1)`

	if _, err := r.db.ExecContext(ctx, query, ids); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*models.TempFile, error) {

	query :=
		`SELECT id, blob_id, name, content_type, size, crc32c, created_at
		 FROM temp_files
		 WHERE created_at < $1
		 ORDER BY created_at
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var files []*models.TempFile
	for rows.Next() {
		f := &models.TempFile{}
		err := rows.Scan(&f.ID, &f.BlobID, &f.Name, &f.ContentType, &f.Size, &f.Checksum, &f.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return files, nil
}

func (r *PostgresRepository) DeleteByIDs(ctx context.Context, ids []string) error {

	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM temp_files WHERE id = ANY($1)`

	if _, err := r.db.ExecContext(ctx, query, ids); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
