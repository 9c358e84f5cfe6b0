package service

import (
	"context"
	"errors"

	"warung/internal/domain"
	"warung/internal/repository"
)

// CatalogService инкапсулирует чтение каталога
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

var ErrInvalidInput = errors.New("invalid input")

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}

func (s *CatalogService) List(ctx context.Context, f repository.CatalogFilter) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, f)
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetProduct(ctx, id)
}
