package service

import (
	"testing"

	"github.com/crewreg/backend/internal/config"
	mock_email "github.com/crewreg/backend/pkg/email/mock"

	"github.com/stretchr/testify/assert"
)

func TestSendVerificationEmailDisabled(t *testing.T) {
	sender := new(mock_email.EmailSender)
	svc := newEmailService(sender, config.EmailConfig{Enabled: false})

	err := svc.SendVerificationEmail(VerificationEmailInput{
		Email:            "a@x.com",
		VerificationCode: "123456",
	})

	assert.NoError(t, err)
	sender.AssertNotCalled(t, "Send")
}
