package mocks

import (
	"context"

	"github.com/nafees-s/tiket-api/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc                func(ctx context.Context, user *domain.User) error
	GetByEmailFunc            func(ctx context.Context, email string) (*domain.User, error)
	GetByPhoneFunc            func(ctx context.Context, phone string) (*domain.User, error)
	GetByIdFunc               func(ctx context.Context, id int) (*domain.User, error)
	GetByTokenFunc            func(ctx context.Context, hash []byte, scope string) (*domain.User, error)
	UpdateUsernameFunc        func(ctx context.Context, userId int, username string) error
	UpdateEmailFunc           func(ctx context.Context, userId int, email string) error
	UpdatePasswordFunc        func(ctx context.Context, userId int, passwordHash []byte) error
	UpdateProfileImageURLFunc func(ctx context.Context, userId int, url string) error
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return m.GetByPhoneFunc(ctx, phone)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockUserRepo) GetByToken(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
	return m.GetByTokenFunc(ctx, hash, scope)
}

func (m *MockUserRepo) UpdateUsername(ctx context.Context, userId int, username string) error {
	return m.UpdateUsernameFunc(ctx, userId, username)
}

func (m *MockUserRepo) UpdateEmail(ctx context.Context, userId int, email string) error {
	return m.UpdateEmailFunc(ctx, userId, email)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, userId int, passwordHash []byte) error {
	return m.UpdatePasswordFunc(ctx, userId, passwordHash)
}

func (m *MockUserRepo) UpdateProfileImageURL(ctx context.Context, userId int, url string) error {
	return m.UpdateProfileImageURLFunc(ctx, userId, url)
}
