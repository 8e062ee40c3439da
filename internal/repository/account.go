package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/crewreg/backend/internal/db"
	"github.com/crewreg/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type accountRepository struct {
	db *sqlx.DB
}

func newAccountRepository(db *sqlx.DB) *accountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `
	SELECT id, email, password_hash, college, committee, contact, verified, verification_code, verification_expires_at, created_at, updated_at
	FROM account WHERE email = ?;
	`
	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select account by email failed: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	const query = `
	SELECT id, email, password_hash, college, committee, contact, verified, verification_code, verification_expires_at, created_at, updated_at
	FROM account WHERE id = uuid_to_bin(?);
	`
	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select account by id failed: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) Upsert(ctx context.Context, account *domain.Account) error {
	const query = `
	INSERT INTO account
	(id, email, password_hash, college, committee, contact, verified, verification_code, verification_expires_at)
	VALUES(uuid_to_bin(?), ?, ?, ?, ?, ?, false, ?, ?)
	ON DUPLICATE KEY UPDATE
	password_hash = VALUES(password_hash),
	college = VALUES(college),
	committee = VALUES(committee),
	contact = VALUES(contact),
	verification_code = VALUES(verification_code),
	verification_expires_at = VALUES(verification_expires_at),
	updated_at = now();
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.College,
		account.Committee,
		account.Contact,
		account.VerificationCode,
		account.VerificationExpiresAt,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db upsert account: %w", err)
	}

	return nil
}

func (r *accountRepository) UpdateCode(ctx context.Context, email string, code string, expiresAt time.Time) error {
	const query = `
	UPDATE account SET verification_code = ?, verification_expires_at = ?, updated_at = now()
	WHERE email = ? AND verified = false;
	`
	res, err := r.db.ExecContext(ctx, query, code, expiresAt, email)
	if err != nil {
		return fmt.Errorf("db update account code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

// ConfirmVerification consumes the pending code. The WHERE clause keeps the
// transition race free at the storage level: two concurrent confirms on the
// same code can never both report success.
func (r *accountRepository) ConfirmVerification(ctx context.Context, email string, code string) error {
	const query = `
	UPDATE account SET verified = true, verification_code = NULL, verification_expires_at = NULL, updated_at = now()
	WHERE email = ? AND verification_code = ? AND verified = false;
	`
	res, err := r.db.ExecContext(ctx, query, email, code)
	if err != nil {
		return fmt.Errorf("db confirm verification: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
