package domain

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"
)

const VerificationCodeLength = 6

// Verification is a pending phone sign-in: an opaque handle bound to the
// phone number and the one-time code sent to it.
type Verification struct {
	ID     string    `json:"id"`
	Phone  string    `json:"phone"`
	Code   string    `json:"code"`
	Expiry time.Time `json:"expiry"`
}

// GenerateVerificationCode returns a random numeric OTP of the standard
// six-digit length.
func GenerateVerificationCode() (string, error) {
	digits := make([]byte, VerificationCodeLength)

	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}

		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}

// VerificationStore holds pending verifications until they expire. Set
// enforces the per-phone resend cooldown with ErrVerificationThrottled.
type VerificationStore interface {
	Set(ctx context.Context, v Verification, ttl, resendCooldown time.Duration) error
	Get(ctx context.Context, id string) (*Verification, error)
	Delete(ctx context.Context, id string) error
}
