package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/crewreg/backend/internal/config"
	"github.com/crewreg/backend/internal/domain"
	"github.com/crewreg/backend/internal/queue/task"
	"github.com/crewreg/backend/internal/repository"
	"github.com/crewreg/backend/pkg/auth"
	"github.com/crewreg/backend/pkg/hash"
	"github.com/crewreg/backend/pkg/keylock"
	"github.com/crewreg/backend/pkg/logger"
	"github.com/crewreg/backend/pkg/otp"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type accountService struct {
	accountRepository repository.Accounts
	hasher            hash.PasswordHasher
	tokenManager      auth.TokenManager
	otpGenerator      otp.Generator
	emails            Emails
	queueClient       *asynq.Client
	authConfig        config.AuthConfig

	// serializes register/resend/verify per email; different emails are
	// fully independent
	keys *keylock.KeyLock
}

func newAccountService(accountRepository repository.Accounts,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	emails Emails,
	queueClient *asynq.Client,
	authConfig config.AuthConfig,
) *accountService {
	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		tokenManager:      tokenManager,
		otpGenerator:      otpGenerator,
		emails:            emails,
		queueClient:       queueClient,
		authConfig:        authConfig,
		keys:              keylock.New(),
	}
}

// Register creates a pending account or fully replaces an unverified one, then
// delivers a fresh verification code. The account row is written before the
// notifier runs, so a delivery failure leaves a resendable code behind.
func (s *accountService) Register(ctx context.Context, input RegisterAccountInput) error {
	s.keys.Lock(input.Email)
	defer s.keys.Unlock(input.Email)

	existing, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get account by email failed: %w", err)
	}
	if existing != nil && existing.Verified {
		return ErrAccountAlreadyRegistered
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	accountID, err := s.accountID(existing)
	if err != nil {
		return err
	}

	code := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	expiresAt := time.Now().Add(s.authConfig.VerificationCodeTTL)

	account := &domain.Account{
		ID:                    accountID,
		Email:                 input.Email,
		PasswordHash:          passwordHash,
		College:               input.College,
		Committee:             input.Committee,
		Contact:               input.Contact,
		VerificationCode:      sql.NullString{String: code, Valid: true},
		VerificationExpiresAt: sql.NullTime{Time: expiresAt, Valid: true},
	}

	if err := s.accountRepository.Upsert(ctx, account); err != nil {
		return fmt.Errorf("upsert account failed: %w", err)
	}

	if err := s.emails.SendVerificationEmail(VerificationEmailInput{
		Email:            input.Email,
		VerificationCode: code,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	return nil
}

// Resend replaces the pending code with a fresh one. Exactly one code is valid
// per account at any time: the previous code is gone once the new row lands.
func (s *accountService) Resend(ctx context.Context, accountEmail string) error {
	s.keys.Lock(accountEmail)
	defer s.keys.Unlock(accountEmail)

	account, err := s.accountRepository.GetByEmail(ctx, accountEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}
	if account.Verified {
		return ErrAccountAlreadyVerified
	}

	code := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	expiresAt := time.Now().Add(s.authConfig.VerificationCodeTTL)

	if err := s.accountRepository.UpdateCode(ctx, accountEmail, code, expiresAt); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return ErrAccountAlreadyVerified
		}
		return fmt.Errorf("update verification code failed: %w", err)
	}

	if err := s.emails.SendVerificationEmail(VerificationEmailInput{
		Email:            accountEmail,
		VerificationCode: code,
		Resend:           true,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	return nil
}

// Verify consumes the pending code and flips the account to verified. This is
// the single irreversible transition of the flow: the code is cleared and can
// never be replayed, and no new code can be issued afterwards.
func (s *accountService) Verify(ctx context.Context, accountEmail string, code string) error {
	s.keys.Lock(accountEmail)
	defer s.keys.Unlock(accountEmail)

	account, err := s.accountRepository.GetByEmail(ctx, accountEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}
	if account.Verified {
		return ErrAccountAlreadyVerified
	}
	if !account.HasLiveCode(time.Now()) {
		return ErrCodeExpired
	}
	if subtle.ConstantTimeCompare([]byte(account.VerificationCode.String), []byte(code)) != 1 {
		return ErrInvalidCode
	}

	if err := s.accountRepository.ConfirmVerification(ctx, accountEmail, code); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			// conditional write lost the race despite the key lock, e.g. an
			// out-of-band store mutation; the code no longer matches
			return ErrInvalidCode
		}
		return fmt.Errorf("confirm verification failed: %w", err)
	}

	s.enqueueWelcomeEmail(ctx, account)

	return nil
}

// Login checks credentials against a verified account and issues a session
// token. A missing account and a wrong password are indistinguishable to the
// caller so registered emails cannot be enumerated.
func (s *accountService) Login(ctx context.Context, accountEmail string, password string) (*Token, error) {
	account, err := s.accountRepository.GetByEmail(ctx, accountEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account by email failed: %w", err)
	}
	if !account.Verified {
		return nil, ErrAccountNotVerified
	}

	if err := s.hasher.Compare(password, account.PasswordHash); err != nil {
		if errors.Is(err, hash.ErrMismatchedPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password failed: %w", err)
	}

	accessToken, ttl, err := s.tokenManager.NewJWT(&account.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	return &Token{AccessToken: accessToken, ExpiresIn: ttl}, nil
}

func (s *accountService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by id failed: %w", err)
	}

	return account, nil
}

func (s *accountService) accountID(existing *domain.Account) (uuid.UUID, error) {
	if existing != nil {
		return existing.ID, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate account id failed: %w", err)
	}
	return id, nil
}

// enqueueWelcomeEmail hands the post-verification welcome mail to the queue.
// Best effort: a broker outage must not fail an already-completed verify.
func (s *accountService) enqueueWelcomeEmail(ctx context.Context, account *domain.Account) {
	if s.queueClient == nil {
		return
	}

	t, err := task.NewSendWelcomeEmailTask(account.Email, account.College)
	if err != nil {
		logger.Error("build welcome email task failed", zap.Error(err))
		return
	}

	if _, err := s.queueClient.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue welcome email failed", zap.String("email", account.Email), zap.Error(err))
	}
}
