// Package catalog serves the static product dataset shipped with the binary.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/webshop/webshop-api/internal/core/domain"
)

//go:embed products.json
var productsJSON []byte

// Repository is an in-memory, read-only product store backed by the embedded
// dataset. It satisfies ports.ProductRepository.
type Repository struct {
	products []domain.Product
}

// NewRepository decodes the embedded dataset. An undecodable dataset is a
// build defect, reported as an error so the composition root can refuse to
// start.
func NewRepository() (*Repository, error) {
	var products []domain.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("catalog: decode embedded dataset: %w", err)
	}
	return &Repository{products: products}, nil
}

// FindAll returns a copy of the catalog so callers cannot mutate the shared
// dataset.
func (r *Repository) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
