package service

import (
	"context"
	"time"

	"github.com/crewreg/backend/internal/config"
	"github.com/crewreg/backend/internal/domain"
	"github.com/crewreg/backend/internal/repository"
	"github.com/crewreg/backend/pkg/auth"
	"github.com/crewreg/backend/pkg/email"
	"github.com/crewreg/backend/pkg/hash"
	"github.com/crewreg/backend/pkg/otp"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Services struct {
	Accounts Accounts
	Emails   Emails
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	EmailSender  email.Sender
	Repos        *repository.Repositories
	QueueClient  *asynq.Client
}

func NewServices(deps Deps) *Services {
	emails := newEmailService(deps.EmailSender, deps.Config.Email)

	return &Services{
		Accounts: newAccountService(deps.Repos.Accounts,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			emails,
			deps.QueueClient,
			deps.Config.Auth,
		),
		Emails: emails,
	}
}

type RegisterAccountInput struct {
	Email     string
	College   string
	Committee string
	Contact   string
	Password  string
}

type Token struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// Accounts is the registration state machine. An account moves from absent
// through pending verification to verified; verified is terminal for this flow.
type Accounts interface {
	Register(ctx context.Context, input RegisterAccountInput) error
	Resend(ctx context.Context, accountEmail string) error
	Verify(ctx context.Context, accountEmail string, code string) error
	Login(ctx context.Context, accountEmail string, password string) (*Token, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

type Emails interface {
	SendVerificationEmail(input VerificationEmailInput) error
}
