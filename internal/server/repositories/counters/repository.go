// Package counters addresses every aggregate counter the sync core
// maintains: the named meta counters (users, boards) and the counters
// embedded on a parent record (a board's article count, an article's
// comment count).
package counters

import "context"

type Kind int

const (
	// KindUsers and KindBoards are named records in the meta collection,
	// created lazily on first increment.
	KindUsers Kind = iota
	KindBoards
	// KindBoardArticles lives on the board record itself.
	KindBoardArticles
	// KindArticleComments lives on the article record itself.
	KindArticleComments
)

// Key addresses one counter.
type Key struct {
	Kind      Kind
	BoardID   string
	ArticleID string
}

func Users() Key  { return Key{Kind: KindUsers} }
func Boards() Key { return Key{Kind: KindBoards} }

func BoardArticles(boardID string) Key {
	return Key{Kind: KindBoardArticles, BoardID: boardID}
}

func ArticleComments(boardID, articleID string) Key {
	return Key{Kind: KindArticleComments, BoardID: boardID, ArticleID: articleID}
}

// Repository applies signed deltas with the backing store's atomic
// increment primitive; no read-modify-write cycles.
type Repository interface {
	// Increment atomically adds delta to an existing counter record and
	// returns common.ErrorNotFound when the record is absent.
	Increment(ctx context.Context, key Key, delta int64) error
	// Create writes a fresh counter record with the given initial value.
	// For counters embedded on a parent record it returns
	// common.ErrorCannotCreate: the parent is not ours to create.
	Create(ctx context.Context, key Key, initial int64) error
}
