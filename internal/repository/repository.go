package repository

import (
	"context"
	"time"

	"github.com/crewreg/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Accounts Accounts
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Accounts: newAccountRepository(db),
	}
}

// Accounts is the durable record store keyed by email. Upsert creates a row or
// fully replaces the profile, credential and pending code of an unverified one.
// ConfirmVerification is a conditional write: it only succeeds while the stored
// code matches and the row is still unverified, so a racing confirm or resend
// surfaces as domain.ErrNoRowsAffected instead of a lost update.
type Accounts interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Upsert(ctx context.Context, account *domain.Account) error
	UpdateCode(ctx context.Context, email string, code string, expiresAt time.Time) error
	ConfirmVerification(ctx context.Context, email string, code string) error
}
