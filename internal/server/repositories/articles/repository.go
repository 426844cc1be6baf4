package articles

import "context"

type Repository interface {
	// DeleteByBoard removes every article of the board in one batch
	// statement. Zero children is a no-op.
	DeleteByBoard(ctx context.Context, boardID string) error
}
