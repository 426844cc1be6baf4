// Package repomanager wires the per-entity repositories to one shared
// database connection and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/fkkmemi/boardsync/internal/server/repositories/accounts"
	"github.com/fkkmemi/boardsync/internal/server/repositories/articles"
	"github.com/fkkmemi/boardsync/internal/server/repositories/boards"
	"github.com/fkkmemi/boardsync/internal/server/repositories/comments"
	"github.com/fkkmemi/boardsync/internal/server/repositories/counters"
	"github.com/fkkmemi/boardsync/internal/server/repositories/tempfiles"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Close() error
	Accounts() accounts.Repository
	Boards() boards.Repository
	Articles() articles.Repository
	Comments() comments.Repository
	Counters() counters.Repository
	TempFiles() tempfiles.Repository
}
