package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/webshop/webshop-api/internal/core/domain"
	"github.com/webshop/webshop-api/internal/core/ports"
)

// ProductService serves the read-only catalog.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}
