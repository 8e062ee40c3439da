package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@x.com", true},
		{"delegate.lead+muns@college.edu", true},
		{"", false},
		{"not-an-email", false},
		{"@x.com", false},
		{"a@", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsEmailValid(tt.email), tt.email)
	}
}

func TestSendEmailInputValidate(t *testing.T) {
	inp := SendEmailInput{To: "a@x.com", Subject: "s", Body: "b"}
	assert.NoError(t, inp.Validate())

	assert.Error(t, (&SendEmailInput{Subject: "s", Body: "b"}).Validate())
	assert.Error(t, (&SendEmailInput{To: "a@x.com", Body: "b"}).Validate())
	assert.Error(t, (&SendEmailInput{To: "bad", Subject: "s", Body: "b"}).Validate())
}
