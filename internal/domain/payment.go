package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

var PaymentMethods = []string{"UPI", "Credit Card", "Debit Card", "Net Banking"}

type Payment struct {
	ID          int
	UserID      int
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Method      string
	Status      PaymentStatus
	PaymentDate *time.Time
	CreatedAt   time.Time
}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}

	return false
}

// PaymentProvider charges the given amount and returns an opaque payment
// reference. The only implementation simulates the charge; the seam exists
// so a real gateway can be dropped in.
type PaymentProvider interface {
	Charge(ctx context.Context, user *User, amount decimal.Decimal, method string) (reference string, err error)
}

type PaymentRepository interface {
	GetById(ctx context.Context, id int) (*Payment, error)
	GetByReference(ctx context.Context, reference string) (*Payment, error)
}
