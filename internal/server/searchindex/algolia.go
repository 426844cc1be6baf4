package searchindex

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"

	"github.com/fkkmemi/boardsync/internal/server/models"
)

// saveObjecter is the slice of the Algolia index the synchronizer uses;
// *search.Index satisfies it.
type saveObjecter interface {
	SaveObject(object interface{}, opts ...interface{}) (search.SaveObjectRes, error)
}

type AlgoliaIndexer struct {
	index saveObjecter
}

func NewAlgoliaIndexer(appID, apiKey, indexName string) *AlgoliaIndexer {
	client := search.NewClient(appID, apiKey)
	return &AlgoliaIndexer{index: client.InitIndex(indexName)}
}

func (a *AlgoliaIndexer) SaveArticle(ctx context.Context, doc *models.SearchDoc) error {

	_, err := a.index.SaveObject(doc, ctx, opt.AutoGenerateObjectIDIfNotExist(true))
	if err != nil {
		return fmt.Errorf("search index error: %w", err)
	}

	return nil
}
