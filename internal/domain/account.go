package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	College      string    `db:"college" json:"college"`
	Committee    string    `db:"committee" json:"committee"`
	Contact      string    `db:"contact" json:"contact"`

	Verified              bool           `db:"verified" json:"verified"`
	VerificationCode      sql.NullString `db:"verification_code" json:"-"`
	VerificationExpiresAt sql.NullTime   `db:"verification_expires_at" json:"-"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}

// HasLiveCode reports whether the account holds an issued verification code
// that has not yet expired at the given instant.
func (a *Account) HasLiveCode(now time.Time) bool {
	return a.VerificationCode.Valid && a.VerificationExpiresAt.Valid && !now.After(a.VerificationExpiresAt.Time)
}
