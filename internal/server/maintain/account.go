package maintain

import (
	"context"
	"fmt"
	"time"

	"github.com/fkkmemi/boardsync/internal/server/mirror"
	"github.com/fkkmemi/boardsync/internal/server/models"
	"github.com/fkkmemi/boardsync/internal/server/repositories/accounts"
)

// AccountMirrorer materializes identity-provider subjects into the primary
// and mirror stores and keeps the two copies in lockstep.
type AccountMirrorer struct {
	accounts   accounts.Repository
	mirror     mirror.Store
	adminEmail string

	now func() time.Time
}

func NewAccountMirrorer(repo accounts.Repository, m mirror.Store, adminEmail string) *AccountMirrorer {
	return &AccountMirrorer{accounts: repo, mirror: m, adminEmail: adminEmail, now: time.Now}
}

// Create builds the account record from the signup payload and writes it to
// the primary store, then the mirror. The one designated administrator email
// gets the elevated privilege level.
func (a *AccountMirrorer) Create(ctx context.Context, payload *models.AccountPayload) error {

	now := a.now()

	level := models.LevelMember
	if payload.Email == a.adminEmail {
		level = models.LevelAdmin
	}

	account := &models.Account{
		UID:         payload.UID,
		Email:       payload.Email,
		DisplayName: payload.DisplayName,
		PhotoURL:    payload.PhotoURL,
		Level:       level,
		CreatedAt:   now,
		VisitedAt:   now,
		VisitCount:  0,
	}

	if err := a.accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("account write: %w", err)
	}

	if err := a.mirror.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("account mirror write: %w", err)
	}

	return nil
}

// Delete removes both copies, mirror first.
func (a *AccountMirrorer) Delete(ctx context.Context, uid string) error {

	if err := a.mirror.DeleteAccount(ctx, uid); err != nil {
		return fmt.Errorf("account mirror remove: %w", err)
	}

	if err := a.accounts.Delete(ctx, uid); err != nil {
		return fmt.Errorf("account remove: %w", err)
	}

	return nil
}
