package maintain

import (
	"context"
	"time"

	"github.com/fkkmemi/boardsync/internal/logging"
	"github.com/fkkmemi/boardsync/internal/server/models"
	"github.com/fkkmemi/boardsync/internal/server/repositories/counters"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

type counterCall struct {
	key   counters.Key
	delta int64
}

type fakeCounterRepo struct {
	incrementErr error
	createErr    error

	increments []counterCall
	creates    []counterCall
}

func (f *fakeCounterRepo) Increment(ctx context.Context, key counters.Key, delta int64) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.increments = append(f.increments, counterCall{key: key, delta: delta})
	return nil
}

func (f *fakeCounterRepo) Create(ctx context.Context, key counters.Key, initial int64) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates = append(f.creates, counterCall{key: key, delta: initial})
	return nil
}

type mergeCall struct {
	boardID    string
	categories []string
	tags       []string
}

type fakeBoardRepo struct {
	err    error
	merges []mergeCall
}

func (f *fakeBoardRepo) MergeFields(ctx context.Context, boardID string, categories, tags []string) error {
	if f.err != nil {
		return f.err
	}
	f.merges = append(f.merges, mergeCall{boardID: boardID, categories: categories, tags: tags})
	return nil
}

type fakeArticleRepo struct {
	err     error
	deleted []string
}

func (f *fakeArticleRepo) DeleteByBoard(ctx context.Context, boardID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, boardID)
	return nil
}

type fakeCommentRepo struct {
	err     error
	deleted []string
}

func (f *fakeCommentRepo) DeleteByArticle(ctx context.Context, articleID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, articleID)
	return nil
}

// fakeBlobStore records every path it is asked to remove and can fail
// selected paths.
type fakeBlobStore struct {
	failPaths map[string]error

	deletes  []string
	prefixes []string
}

func (f *fakeBlobStore) Delete(ctx context.Context, path string) error {
	if err, ok := f.failPaths[path]; ok {
		return err
	}
	f.deletes = append(f.deletes, path)
	return nil
}

func (f *fakeBlobStore) DeletePrefix(ctx context.Context, prefix string) error {
	if err, ok := f.failPaths[prefix]; ok {
		return err
	}
	f.prefixes = append(f.prefixes, prefix)
	return nil
}

type fakeTempFileRepo struct {
	saveErr   error
	deleteErr error
	listErr   error

	expired []*models.TempFile

	saved            []*models.TempFile
	deletedBlobIDs   [][]string
	deletedRecordIDs [][]string
	listCalls        []time.Time
}

func (f *fakeTempFileRepo) Save(ctx context.Context, file *models.TempFile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, file)
	return nil
}

func (f *fakeTempFileRepo) DeleteByBlobIDs(ctx context.Context, ids []string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedBlobIDs = append(f.deletedBlobIDs, ids)
	return nil
}

func (f *fakeTempFileRepo) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*models.TempFile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.listCalls = append(f.listCalls, cutoff)
	if len(f.expired) > limit {
		return f.expired[:limit], nil
	}
	return f.expired, nil
}

func (f *fakeTempFileRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedRecordIDs = append(f.deletedRecordIDs, ids)
	return nil
}

type fakeAccountRepo struct {
	saveErr   error
	deleteErr error

	saved   []*models.Account
	deleted []string
}

func (f *fakeAccountRepo) Save(ctx context.Context, account *models.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, account)
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, uid string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeMirrorStore struct {
	saveErr   error
	deleteErr error

	saved   []*models.Account
	deleted []string
}

func (f *fakeMirrorStore) SaveAccount(ctx context.Context, account *models.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, account)
	return nil
}

func (f *fakeMirrorStore) DeleteAccount(ctx context.Context, uid string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeIndexer struct {
	err  error
	docs []*models.SearchDoc
}

func (f *fakeIndexer) SaveArticle(ctx context.Context, doc *models.SearchDoc) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, doc)
	return nil
}
