package mocks

import (
	"context"

	"github.com/nafees-s/tiket-api/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc           func(ctx context.Context, booking *domain.Booking, payment *domain.Payment) error
	GetByIdAndUserIdFunc func(ctx context.Context, id, userId int) (*domain.Booking, error)
	GetAllByUserIdFunc   func(ctx context.Context, userId int, pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking, payment *domain.Payment) error {
	return m.CreateFunc(ctx, booking, payment)
}

func (m *MockBookingRepo) GetByIdAndUserId(ctx context.Context, id, userId int) (*domain.Booking, error) {
	return m.GetByIdAndUserIdFunc(ctx, id, userId)
}

func (m *MockBookingRepo) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	return m.GetAllByUserIdFunc(ctx, userId, pagination)
}
