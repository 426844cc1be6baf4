package boards

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/fkkmemi/boardsync/internal/common"
)

// passthroughConverter lets slice arguments reach the mock untouched; the
// real pgx driver encodes []string as text[] itself.
type passthroughConverter struct{}

func (passthroughConverter) ConvertValue(v any) (driver.Value, error) { return v, nil }

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.ValueConverterOption(passthroughConverter{}),
	)
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestMergeFields_Unions(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+boards\s+SET\s+categories\s*=.*array_agg\(DISTINCT c\).*tags\s*=.*array_agg\(DISTINCT t\).*WHERE\s+id\s*=\s*\$1$`).
		WithArgs("b1", []string{"news"}, []string{"x", "y"}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MergeFields(context.Background(), "b1", []string{"news"}, []string{"x", "y"})
	if err != nil {
		t.Fatalf("MergeFields error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMergeFields_MissingBoard(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+boards`).
		WithArgs("ghost", []string{}, []string{"x"}).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MergeFields(context.Background(), "ghost", []string{}, []string{"x"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestMergeFields_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+boards`).WillReturnError(errors.New("db down"))

	if err := repo.MergeFields(context.Background(), "b1", nil, nil); err == nil {
		t.Fatal("expected error")
	}
}
