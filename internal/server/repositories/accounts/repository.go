package accounts

import (
	"context"

	"github.com/fkkmemi/boardsync/internal/server/models"
)

type Repository interface {
	Save(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, uid string) error
}
