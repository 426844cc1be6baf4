package tempfiles

import (
	"context"
	"time"

	"github.com/fkkmemi/boardsync/internal/server/models"
)

type Repository interface {
	// Save writes the staging record for a finalized upload.
	Save(ctx context.Context, file *models.TempFile) error
	// DeleteByBlobIDs retires every record whose blob ID is in ids, in one
	// batch statement. An empty id set or absent records are no-ops.
	DeleteByBlobIDs(ctx context.Context, ids []string) error
	// ListExpired returns records created before cutoff, oldest first,
	// capped at limit. An empty result is not an error.
	ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*models.TempFile, error)
	// DeleteByIDs retires records by their generated keys, in one batch
	// statement.
	DeleteByIDs(ctx context.Context, ids []string) error
}
