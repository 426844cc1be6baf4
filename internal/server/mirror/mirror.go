// Package mirror writes Account records into the low-latency mirror store
// in lockstep with primary-store account writes.
package mirror

import (
	"context"

	"github.com/fkkmemi/boardsync/internal/server/models"
)

type Store interface {
	// SaveAccount writes the mirror copy of an account. The copy is
	// field-equivalent to the primary record except that timestamps are
	// carried as epoch milliseconds.
	SaveAccount(ctx context.Context, account *models.Account) error
	// DeleteAccount removes the mirror copy. An absent record is success.
	DeleteAccount(ctx context.Context, uid string) error
}
