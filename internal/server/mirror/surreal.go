package mirror

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/fkkmemi/boardsync/internal/server/models"
)

// seams for testing the driver calls
var (
	surrealChange = func(db *surrealdb.DB, thing string, data map[string]any) (any, error) {
		return db.Change(thing, data)
	}
	surrealDelete = func(db *surrealdb.DB, thing string) (any, error) {
		return db.Delete(thing)
	}
)

type SurrealStore struct {
	db *surrealdb.DB
}

// Connect dials the mirror store, signs in and selects the namespace and
// database the account records live in.
func Connect(url, user, password, namespace, database string) (*SurrealStore, error) {

	db, err := surrealdb.New(url)
	if err != nil {
		return nil, fmt.Errorf("mirror connect error: %w", err)
	}

	if _, err := db.Signin(map[string]any{"user": user, "pass": password}); err != nil {
		return nil, fmt.Errorf("mirror signin error: %w", err)
	}

	if _, err := db.Use(namespace, database); err != nil {
		return nil, fmt.Errorf("mirror use error: %w", err)
	}

	return &SurrealStore{db: db}, nil
}

func (s *SurrealStore) SaveAccount(_ context.Context, account *models.Account) error {

	data := map[string]any{
		"email":       account.Email,
		"displayName": account.DisplayName,
		"photoURL":    account.PhotoURL,
		"level":       account.Level,
		"createdAt":   account.CreatedAt.UnixMilli(),
		"visitedAt":   account.VisitedAt.UnixMilli(),
		"visitCount":  account.VisitCount,
	}

	if _, err := surrealChange(s.db, "accounts:"+account.UID, data); err != nil {
		return fmt.Errorf("mirror save error: %w", err)
	}

	return nil
}

func (s *SurrealStore) DeleteAccount(_ context.Context, uid string) error {

	if _, err := surrealDelete(s.db, "accounts:"+uid); err != nil {
		return fmt.Errorf("mirror delete error: %w", err)
	}

	return nil
}

func (s *SurrealStore) Close() {
	s.db.Close()
}
