package mocks

import (
	"context"
	"time"

	"github.com/nafees-s/tiket-api/internal/domain"
)

type MockSelectionStore struct {
	domain.SelectionStore
	GetFunc    func(ctx context.Context, sessionID string) (*domain.Selection, error)
	PutFunc    func(ctx context.Context, sessionID string, sel domain.Selection, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, sessionID string) error
}

func (m *MockSelectionStore) Get(ctx context.Context, sessionID string) (*domain.Selection, error) {
	return m.GetFunc(ctx, sessionID)
}

func (m *MockSelectionStore) Put(
	ctx context.Context,
	sessionID string,
	sel domain.Selection,
	ttl time.Duration) error {

	return m.PutFunc(ctx, sessionID, sel, ttl)
}

func (m *MockSelectionStore) Delete(ctx context.Context, sessionID string) error {
	return m.DeleteFunc(ctx, sessionID)
}
