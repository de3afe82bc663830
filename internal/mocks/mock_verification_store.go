package mocks

import (
	"context"
	"time"

	"github.com/nafees-s/tiket-api/internal/domain"
)

type MockVerificationStore struct {
	domain.VerificationStore
	SetFunc    func(ctx context.Context, v domain.Verification, ttl, resendCooldown time.Duration) error
	GetFunc    func(ctx context.Context, id string) (*domain.Verification, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockVerificationStore) Set(
	ctx context.Context,
	v domain.Verification,
	ttl, resendCooldown time.Duration) error {

	return m.SetFunc(ctx, v, ttl, resendCooldown)
}

func (m *MockVerificationStore) Get(ctx context.Context, id string) (*domain.Verification, error) {
	return m.GetFunc(ctx, id)
}

func (m *MockVerificationStore) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}
