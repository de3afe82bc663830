package mocks

import (
	"context"

	"github.com/nafees-s/tiket-api/internal/domain"
)

type MockPaymentRepo struct {
	domain.PaymentRepository
	GetByIdFunc        func(ctx context.Context, id int) (*domain.Payment, error)
	GetByReferenceFunc func(ctx context.Context, reference string) (*domain.Payment, error)
}

func (m *MockPaymentRepo) GetById(ctx context.Context, id int) (*domain.Payment, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockPaymentRepo) GetByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	return m.GetByReferenceFunc(ctx, reference)
}
