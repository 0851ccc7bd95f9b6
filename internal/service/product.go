package service

import (
	"context"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) AddProduct(ctx context.Context, p *domain.Product) error {
	if p.SKU == "" {
		return &domain.ValidationError{Field: "sku", Message: "required"}
	}
	if p.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "required"}
	}
	if p.WarrantyMonths < 0 {
		return &domain.ValidationError{Field: "default_warranty_months", Message: "must not be negative"}
	}
	if existing, _ := s.productRepo.GetBySKU(ctx, p.SKU); existing != nil {
		return &domain.ValidationError{Field: "sku", Message: "already exists"}
	}
	return s.productRepo.Create(ctx, p)
}

func (s *productService) GetProduct(ctx context.Context, id int32) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if _, err := s.productRepo.GetByID(ctx, p.ID); err != nil {
		return err
	}
	return s.productRepo.Update(ctx, p)
}

func (s *productService) DeleteProduct(ctx context.Context, id int32) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, search, category string, activeOnly bool, page, pageSize int32) ([]domain.Product, int32, error) {
	return s.productRepo.List(ctx, search, category, activeOnly, page, pageSize)
}

func (s *productService) ListCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.ListCategories(ctx)
}

func (s *productService) BulkDelete(ctx context.Context, ids []int32) []BulkOutcome {
	outcomes := make([]BulkOutcome, 0, len(ids))
	for _, id := range ids {
		err := s.productRepo.Delete(ctx, id)
		outcome := BulkOutcome{ID: id, Success: err == nil}
		if err != nil {
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *productService) BulkSetActive(ctx context.Context, ids []int32, active bool) []BulkOutcome {
	outcomes := make([]BulkOutcome, 0, len(ids))
	for _, id := range ids {
		outcome := BulkOutcome{ID: id}
		p, err := s.productRepo.GetByID(ctx, id)
		if err == nil {
			p.IsActive = active
			err = s.productRepo.Update(ctx, p)
		}
		outcome.Success = err == nil
		if err != nil {
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
