package maintain

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/fkkmemi/boardsync/internal/logging"
	"github.com/fkkmemi/boardsync/internal/server/blobstore"
	"github.com/fkkmemi/boardsync/internal/server/models"
	"github.com/fkkmemi/boardsync/internal/server/repositories/tempfiles"
)

// TempFileCollector reclaims uploaded blobs that never got attached to a
// finished article, and retires the staging records of blobs that were.
type TempFileCollector struct {
	tempFiles tempfiles.Repository
	blobs     blobstore.Store
	log       logging.Logger
	retention time.Duration
	limit     int

	now func() time.Time
}

func NewTempFileCollector(repo tempfiles.Repository, blobs blobstore.Store, log logging.Logger, retention time.Duration, limit int) *TempFileCollector {
	return &TempFileCollector{
		tempFiles: repo,
		blobs:     blobs,
		log:       log.With("module", "tempfile_gc"),
		retention: retention,
		limit:     limit,
		now:       time.Now,
	}
}

// RecordUpload stages a finalized upload. Markdown objects are article
// content, not uploads awaiting attachment, and are skipped.
func (g *TempFileCollector) RecordUpload(ctx context.Context, blob *models.BlobInfo) error {

	if path.Ext(blob.Name) == ".md" {
		return nil
	}

	now := g.now()
	segments := strings.Split(blob.Name, "/")

	file := &models.TempFile{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		BlobID:      segments[len(segments)-1],
		Name:        blob.Name,
		ContentType: blob.ContentType,
		Size:        blob.Size,
		Checksum:    blob.Checksum,
		CreatedAt:   now,
	}

	if err := g.tempFiles.Save(ctx, file); err != nil {
		return fmt.Errorf("temp file record: %w", err)
	}

	return nil
}

// RemoveAttached retires the staging records of every blob the article's
// image list references (images and their thumbnails). Records that are
// already gone are fine.
func (g *TempFileCollector) RemoveAttached(ctx context.Context, images []models.Image) error {

	if len(images) == 0 {
		return nil
	}

	ids := make([]string, 0, len(images)*2)
	for _, image := range images {
		ids = append(ids, image.ID, image.ThumbID)
	}

	if err := g.tempFiles.DeleteByBlobIDs(ctx, ids); err != nil {
		return fmt.Errorf("temp file promotion: %w", err)
	}

	return nil
}

// RemoveReplaced deletes the blobs of images that were present in the
// previous article version but are gone from the new one, both the full
// image and its thumbnail. Per-blob failures are logged and swallowed.
func (g *TempFileCollector) RemoveReplaced(ctx context.Context, boardID, articleID string, before, after []models.Image) error {

	kept := make(map[string]struct{}, len(after))
	for _, image := range after {
		kept[image.ID] = struct{}{}
	}

	for _, image := range before {
		if _, ok := kept[image.ID]; ok {
			continue
		}
		for _, blobID := range []string{image.ID, image.ThumbID} {
			if err := g.blobs.Delete(ctx, imagePath(boardID, articleID, blobID)); err != nil {
				g.log.Error(ctx, "replaced image remove failed", "blobId", blobID, "error", err.Error())
			}
		}
	}

	return nil
}

// SweepExpired retires staging records older than the retention window,
// oldest first, at most limit per run. For each candidate the blob is
// deleted first (failure logged, non-fatal), then the records are retired
// in one batch. An empty candidate set is a no-op.
func (g *TempFileCollector) SweepExpired(ctx context.Context) error {

	cutoff := g.now().Add(-g.retention)

	files, err := g.tempFiles.ListExpired(ctx, cutoff, g.limit)
	if err != nil {
		return fmt.Errorf("temp file sweep: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	ids := make([]string, 0, len(files))
	for _, file := range files {
		if err := g.blobs.Delete(ctx, file.Name); err != nil {
			g.log.Error(ctx, "temp file blob remove failed", "name", file.Name, "error", err.Error())
		}
		ids = append(ids, file.ID)
	}

	if err := g.tempFiles.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("temp file sweep: %w", err)
	}

	return nil
}
