package mocks

import (
	"context"

	"github.com/nafees-s/tiket-api/internal/domain"
	"github.com/shopspring/decimal"
)

type MockPaymentProvider struct {
	ChargeFunc func(ctx context.Context, user *domain.User, amount decimal.Decimal, method string) (string, error)
}

func (m *MockPaymentProvider) Charge(
	ctx context.Context,
	user *domain.User,
	amount decimal.Decimal,
	method string) (string, error) {

	return m.ChargeFunc(ctx, user, amount, method)
}
