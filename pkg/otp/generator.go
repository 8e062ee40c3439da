package otp

import "github.com/xlzd/gotp"

// Generator produces one-time numeric verification codes.
type Generator interface {
	RandomCode(length int) string
}

// GOTPGenerator derives each code from a one-off TOTP over a fresh random
// secret. Codes are zero padded, so a 6 digit code ranges 000000-999999.
type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

func (g *GOTPGenerator) RandomCode(length int) string {
	secret := gotp.RandomSecret(16)
	return gotp.NewTOTP(secret, length, 30, nil).Now()
}
