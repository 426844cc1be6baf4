// Package searchindex submits denormalized article projections to the
// hosted search index.
package searchindex

import (
	"context"

	"github.com/fkkmemi/boardsync/internal/server/models"
)

type Indexer interface {
	// SaveArticle upserts the projection, letting the index generate its
	// own object identifier.
	SaveArticle(ctx context.Context, doc *models.SearchDoc) error
}
