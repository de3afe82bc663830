package mocks

import (
	"github.com/nafees-s/tiket-api/internal/domain"
)

type MockCatalogRepo struct {
	domain.CatalogRepository
	SectionsFunc func(kind domain.Kind) []domain.Section
	GetByIdFunc  func(id string) (*domain.CatalogItem, error)
	SearchFunc   func(term, genre string) []domain.CatalogItem
}

func (m *MockCatalogRepo) Sections(kind domain.Kind) []domain.Section {
	return m.SectionsFunc(kind)
}

func (m *MockCatalogRepo) GetById(id string) (*domain.CatalogItem, error) {
	return m.GetByIdFunc(id)
}

func (m *MockCatalogRepo) Search(term, genre string) []domain.CatalogItem {
	return m.SearchFunc(term, genre)
}
