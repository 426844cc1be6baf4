package maintain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkkmemi/boardsync/internal/common"
	"github.com/fkkmemi/boardsync/internal/server/models"
	"github.com/fkkmemi/boardsync/internal/server/repositories/counters"
)

type routerFixture struct {
	router *Router

	counterRepo  *fakeCounterRepo
	boardRepo    *fakeBoardRepo
	articleRepo  *fakeArticleRepo
	commentRepo  *fakeCommentRepo
	tempFileRepo *fakeTempFileRepo
	accountRepo  *fakeAccountRepo
	mirrorStore  *fakeMirrorStore
	blobs        *fakeBlobStore
	index        *fakeIndexer
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		counterRepo:  &fakeCounterRepo{},
		boardRepo:    &fakeBoardRepo{},
		articleRepo:  &fakeArticleRepo{},
		commentRepo:  &fakeCommentRepo{},
		tempFileRepo: &fakeTempFileRepo{},
		accountRepo:  &fakeAccountRepo{},
		mirrorStore:  &fakeMirrorStore{},
		blobs:        &fakeBlobStore{},
		index:        &fakeIndexer{},
	}

	f.router = NewRouter(
		nopLogger{},
		NewAccountMirrorer(f.accountRepo, f.mirrorStore, "admin@example.com"),
		NewCounterMaintainer(f.counterRepo),
		NewFieldMerger(f.boardRepo),
		NewCascadeCoordinator(f.articleRepo, f.commentRepo, f.blobs),
		NewTempFileCollector(f.tempFileRepo, f.blobs, nopLogger{}, time.Hour, 5),
		NewSearchSynchronizer(f.index),
	)

	return f
}

func TestRouter_Handle_AccountCreated(t *testing.T) {
	f := newRouterFixture()

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:    models.EventAccountCreated,
		Account: &models.AccountPayload{UID: "u1", Email: "user@example.com"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Advisories)

	require.Len(t, f.accountRepo.saved, 1)
	require.Len(t, f.mirrorStore.saved, 1)
	require.Len(t, f.counterRepo.increments, 1)
	assert.Equal(t, counterCall{key: counters.Users(), delta: 1}, f.counterRepo.increments[0])
}

func TestRouter_Handle_AccountDeleted(t *testing.T) {
	f := newRouterFixture()

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:    models.EventAccountDeleted,
		Account: &models.AccountPayload{UID: "u1"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Advisories)

	assert.Equal(t, []string{"u1"}, f.mirrorStore.deleted)
	assert.Equal(t, []string{"u1"}, f.accountRepo.deleted)
	require.Len(t, f.counterRepo.increments, 1)
	assert.Equal(t, counterCall{key: counters.Users(), delta: -1}, f.counterRepo.increments[0])
}

func TestRouter_Handle_ArticleCreated(t *testing.T) {
	f := newRouterFixture()

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:      models.EventArticleCreated,
		BoardID:   "b1",
		ArticleID: "a1",
		Article: &models.Article{
			BoardID:  "b1",
			Category: "news",
			Tags:     []string{"x", "y"},
			Images:   []models.Image{{ID: "img-1", ThumbID: "thumb-1"}},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Advisories)

	require.Len(t, f.counterRepo.increments, 1)
	assert.Equal(t, counterCall{key: counters.BoardArticles("b1"), delta: 1}, f.counterRepo.increments[0])

	require.Len(t, f.boardRepo.merges, 1)
	assert.Equal(t, mergeCall{boardID: "b1", categories: []string{"news"}, tags: []string{"x", "y"}}, f.boardRepo.merges[0])

	require.Len(t, f.tempFileRepo.deletedBlobIDs, 1)
	assert.Equal(t, []string{"img-1", "thumb-1"}, f.tempFileRepo.deletedBlobIDs[0])
	assert.Len(t, f.tempFileRepo.listCalls, 1, "every creation runs an expiry sweep")

	require.Len(t, f.index.docs, 1)
	assert.Equal(t, "a1", f.index.docs[0].ArticleID)
}

func TestRouter_Handle_ArticleCreated_AdvisoryIsolation(t *testing.T) {
	f := newRouterFixture()
	f.index.err = errors.New("index unavailable")

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:      models.EventArticleCreated,
		BoardID:   "b1",
		ArticleID: "a1",
		Article:   &models.Article{BoardID: "b1", Category: "news"},
	})
	require.NoError(t, err, "an advisory failure must not fail the event")

	require.Len(t, result.Advisories, 1)
	assert.Equal(t, "search projection", result.Advisories[0].Step)
	assert.ErrorIs(t, result.Advisories[0].Err, f.index.err)

	assert.Len(t, f.counterRepo.increments, 1, "sibling steps still ran")
	assert.Len(t, f.boardRepo.merges, 1)
}

func TestRouter_Handle_ArticleCreated_CriticalPropagates(t *testing.T) {
	f := newRouterFixture()
	someErr := errors.New("connection reset")
	f.counterRepo.incrementErr = someErr
	f.counterRepo.createErr = someErr

	_, err := f.router.Handle(context.Background(), &models.Event{
		Type:      models.EventArticleCreated,
		BoardID:   "b1",
		ArticleID: "a1",
		Article:   &models.Article{BoardID: "b1", Category: "news"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, someErr)
	assert.Empty(t, f.boardRepo.merges, "steps after a critical failure do not run")
}

func TestRouter_Handle_ArticleUpdated(t *testing.T) {
	f := newRouterFixture()

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:      models.EventArticleUpdated,
		BoardID:   "b1",
		ArticleID: "a1",
		Before: &models.Article{
			BoardID:  "b1",
			Category: "news",
			Images:   []models.Image{{ID: "img-1", ThumbID: "thumb-1"}},
		},
		Article: &models.Article{
			BoardID:  "b1",
			Category: "talk",
			Tags:     []string{"x"},
			Images:   []models.Image{{ID: "img-2", ThumbID: "thumb-2"}},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Advisories)

	assert.Empty(t, f.counterRepo.increments, "updates never move counters")

	require.Len(t, f.boardRepo.merges, 1)
	assert.Equal(t, mergeCall{boardID: "b1", categories: []string{"talk"}, tags: []string{"x"}}, f.boardRepo.merges[0])

	assert.Equal(t, []string{
		"images/boards/b1/a1/img-1",
		"images/boards/b1/a1/thumb-1",
	}, f.blobs.deletes, "images dropped by the update are reclaimed")

	require.Len(t, f.tempFileRepo.deletedBlobIDs, 1)
	assert.Equal(t, []string{"img-2", "thumb-2"}, f.tempFileRepo.deletedBlobIDs[0])

	assert.Empty(t, f.index.docs, "updates are not projected into the search index")
}

func TestRouter_Handle_ArticleDeleted(t *testing.T) {
	f := newRouterFixture()

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:      models.EventArticleDeleted,
		BoardID:   "b1",
		ArticleID: "a1",
		Article:   &models.Article{BoardID: "b1", UID: "u1"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Advisories)

	require.Len(t, f.counterRepo.increments, 1)
	assert.Equal(t, counterCall{key: counters.BoardArticles("b1"), delta: -1}, f.counterRepo.increments[0])
	assert.Equal(t, []string{"a1"}, f.commentRepo.deleted)
	assert.Equal(t, []string{"boards/b1/a1-u1.md"}, f.blobs.deletes)
	assert.Equal(t, []string{"images/boards/b1/a1"}, f.blobs.prefixes)
}

func TestRouter_Handle_ArticleDeleted_BlobFaultDoesNotBlockSiblings(t *testing.T) {
	f := newRouterFixture()
	f.blobs.failPaths = map[string]error{
		"boards/b1/a1-u1.md": errors.New("unavailable"),
	}

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:      models.EventArticleDeleted,
		BoardID:   "b1",
		ArticleID: "a1",
		Article:   &models.Article{BoardID: "b1", UID: "u1"},
	})
	require.NoError(t, err)

	require.Len(t, result.Advisories, 1)
	assert.Equal(t, "content blob", result.Advisories[0].Step)

	assert.Len(t, f.counterRepo.increments, 1)
	assert.Equal(t, []string{"a1"}, f.commentRepo.deleted)
	assert.Equal(t, []string{"images/boards/b1/a1"}, f.blobs.prefixes,
		"the image prefix is still cleared after the content blob fails")
}

func TestRouter_Handle_BoardDeleted(t *testing.T) {
	f := newRouterFixture()

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type:    models.EventBoardDeleted,
		BoardID: "b1",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Advisories)

	require.Len(t, f.counterRepo.increments, 1)
	assert.Equal(t, counterCall{key: counters.Boards(), delta: -1}, f.counterRepo.increments[0])
	assert.Equal(t, []string{"b1"}, f.articleRepo.deleted)
}

func TestRouter_Handle_Comments(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	_, err := f.router.Handle(ctx, &models.Event{
		Type: models.EventCommentCreated, BoardID: "b1", ArticleID: "a1", CommentID: "c1",
	})
	require.NoError(t, err)

	_, err = f.router.Handle(ctx, &models.Event{
		Type: models.EventCommentDeleted, BoardID: "b1", ArticleID: "a1", CommentID: "c1",
	})
	require.NoError(t, err)

	require.Len(t, f.counterRepo.increments, 2)
	key := counters.ArticleComments("b1", "a1")
	assert.Equal(t, counterCall{key: key, delta: 1}, f.counterRepo.increments[0])
	assert.Equal(t, counterCall{key: key, delta: -1}, f.counterRepo.increments[1])
}

func TestRouter_Handle_BlobFinalized(t *testing.T) {
	f := newRouterFixture()

	result, err := f.router.Handle(context.Background(), &models.Event{
		Type: models.EventBlobFinalized,
		Blob: &models.BlobInfo{Name: "images/boards/b1/a1/img-1", ContentType: "image/webp"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Advisories)

	require.Len(t, f.tempFileRepo.saved, 1)
	assert.Equal(t, "img-1", f.tempFileRepo.saved[0].BlobID)
}

// Board-level category and tag sets only grow: deleting the article that
// contributed a value leaves the value in place.
func TestRouter_Handle_ArticleLifecycle_SetsDoNotShrink(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	article := &models.Article{BoardID: "b1", UID: "u1", Category: "news", Tags: []string{"x", "y"}}

	_, err := f.router.Handle(ctx, &models.Event{
		Type: models.EventArticleCreated, BoardID: "b1", ArticleID: "a1", Article: article,
	})
	require.NoError(t, err)

	_, err = f.router.Handle(ctx, &models.Event{
		Type: models.EventArticleDeleted, BoardID: "b1", ArticleID: "a1", Article: article,
	})
	require.NoError(t, err)

	require.Len(t, f.boardRepo.merges, 1, "deletion issues no board field change")
	assert.Equal(t, mergeCall{boardID: "b1", categories: []string{"news"}, tags: []string{"x", "y"}}, f.boardRepo.merges[0])
}

func TestRouter_Handle_UnknownEvent(t *testing.T) {
	f := newRouterFixture()

	_, err := f.router.Handle(context.Background(), &models.Event{Type: "board.renamed"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorUnknownEvent)
}

func TestRouter_Handle_InvalidEvent(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	tests := []struct {
		name  string
		event *models.Event
	}{
		{name: "account without payload", event: &models.Event{Type: models.EventAccountCreated}},
		{name: "board without id", event: &models.Event{Type: models.EventBoardDeleted}},
		{name: "article without snapshot", event: &models.Event{Type: models.EventArticleCreated, BoardID: "b1", ArticleID: "a1"}},
		{name: "update without before", event: &models.Event{Type: models.EventArticleUpdated, BoardID: "b1", ArticleID: "a1", Article: &models.Article{}}},
		{name: "comment without article id", event: &models.Event{Type: models.EventCommentCreated, BoardID: "b1"}},
		{name: "blob without name", event: &models.Event{Type: models.EventBlobFinalized, Blob: &models.BlobInfo{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.router.Handle(ctx, tt.event)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrorInvalidEvent)
		})
	}
}
