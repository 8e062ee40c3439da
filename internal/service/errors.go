package service

import "errors"

var (
	ErrAccountAlreadyRegistered = errors.New("account already registered and verified")
	ErrAccountNotFound          = errors.New("account not found")
	ErrAccountAlreadyVerified   = errors.New("account already verified")
	ErrCodeExpired              = errors.New("verification code expired")
	ErrInvalidCode              = errors.New("invalid verification code")
	ErrAccountNotVerified       = errors.New("account email not verified")
	ErrInvalidCredentials       = errors.New("invalid credentials")

	// ErrNotificationFailed means the account state was durably written but the
	// code could not be delivered; the caller may retry via resend.
	ErrNotificationFailed = errors.New("verification email delivery failed")
)
