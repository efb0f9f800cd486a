package ports

import (
	"context"

	"github.com/webshop/webshop-api/internal/core/domain"
)

// ProductRepository exposes the read-only product catalog.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
}
