package catalog

import (
	"context"
	"testing"
)

func TestNewRepository_LoadsEmbeddedDataset(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	products, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			t.Fatalf("incomplete product record: %+v", p)
		}
		if p.Price <= 0 {
			t.Fatalf("product %s has non-positive price %v", p.ID, p.Price)
		}
	}
}

func TestFindAll_ReturnsCopy(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	first, _ := repo.FindAll(context.Background())
	first[0].Name = "tampered"

	second, _ := repo.FindAll(context.Background())
	if second[0].Name == "tampered" {
		t.Fatal("FindAll must not expose the shared slice")
	}
}
