// Package payment implements the payment provider seam. The app never
// charges real money; the simulator approves every charge and mints an
// opaque reference the booking is reconciled against.
package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/nafees-s/tiket-api/internal/domain"
	"github.com/shopspring/decimal"
)

type SimulatedProvider struct{}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) Charge(
	ctx context.Context,
	user *domain.User,
	amount decimal.Decimal,
	method string) (string, error) {

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return "sim_" + uuid.New().String(), nil
}
