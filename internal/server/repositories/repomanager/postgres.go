package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/fkkmemi/boardsync/internal/server/migrations"
	"github.com/fkkmemi/boardsync/internal/server/repositories/accounts"
	"github.com/fkkmemi/boardsync/internal/server/repositories/articles"
	"github.com/fkkmemi/boardsync/internal/server/repositories/boards"
	"github.com/fkkmemi/boardsync/internal/server/repositories/comments"
	"github.com/fkkmemi/boardsync/internal/server/repositories/counters"
	"github.com/fkkmemi/boardsync/internal/server/repositories/tempfiles"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	accounts  accounts.Repository
	boards    boards.Repository
	articles  articles.Repository
	comments  comments.Repository
	counters  counters.Repository
	tempFiles tempfiles.Repository
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:        db,
		accounts:  accounts.NewPostgresRepository(db),
		boards:    boards.NewPostgresRepository(db),
		articles:  articles.NewPostgresRepository(db),
		comments:  comments.NewPostgresRepository(db),
		counters:  counters.NewPostgresRepository(db),
		tempFiles: tempfiles.NewPostgresRepository(db),
	}, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository   { return m.accounts }
func (m *PostgresRepositoryManager) Boards() boards.Repository       { return m.boards }
func (m *PostgresRepositoryManager) Articles() articles.Repository   { return m.articles }
func (m *PostgresRepositoryManager) Comments() comments.Repository   { return m.comments }
func (m *PostgresRepositoryManager) Counters() counters.Repository   { return m.counters }
func (m *PostgresRepositoryManager) TempFiles() tempfiles.Repository { return m.tempFiles }

var _ RepositoryManager = (*PostgresRepositoryManager)(nil)
