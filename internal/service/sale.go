package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type saleService struct {
	saleRepo    repository.SaleRepository
	custRepo    repository.CustomerRepository
	productRepo repository.ProductRepository
}

func NewSaleService(saleRepo repository.SaleRepository, custRepo repository.CustomerRepository, productRepo repository.ProductRepository) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		custRepo:    custRepo,
		productRepo: productRepo,
	}
}

func (s *saleService) RecordSale(ctx context.Context, sale *domain.Sale) error {
	if sale.OrderNumber == "" {
		return &domain.ValidationError{Field: "order_number", Message: "required"}
	}
	if sale.InvoiceNumber == "" {
		return &domain.ValidationError{Field: "invoice_number", Message: "required"}
	}
	if sale.Quantity < 1 {
		return &domain.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	if _, err := s.custRepo.GetByID(ctx, sale.CustomerID); err != nil {
		return &domain.ValidationError{Field: "customer_id", Message: "unknown customer"}
	}
	product, err := s.productRepo.GetByID(ctx, sale.ProductID)
	if err != nil {
		return &domain.ValidationError{Field: "product_id", Message: "unknown product"}
	}
	if sale.WarrantyMonths == 0 {
		sale.WarrantyMonths = product.WarrantyMonths
	}
	if existing, _ := s.saleRepo.GetByOrderNumber(ctx, sale.OrderNumber); existing != nil {
		return &domain.ValidationError{Field: "order_number", Message: "already recorded"}
	}
	return s.saleRepo.Create(ctx, sale)
}

func (s *saleService) GetSale(ctx context.Context, id int32) (*domain.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

func (s *saleService) UpdateSale(ctx context.Context, sale *domain.Sale) error {
	if _, err := s.saleRepo.GetByID(ctx, sale.ID); err != nil {
		return err
	}
	return s.saleRepo.Update(ctx, sale)
}

func (s *saleService) DeleteSale(ctx context.Context, id int32) error {
	return s.saleRepo.Delete(ctx, id)
}

func (s *saleService) ListSales(ctx context.Context, customerID, productID int32, page, pageSize int32) ([]domain.Sale, int32, error) {
	return s.saleRepo.List(ctx, customerID, productID, page, pageSize)
}

// csvImportHeader is the template the admin UI hands out. Column order
// is fixed.
var csvImportHeader = []string{"order_number", "invoice_number", "customer_name", "customer_email", "product_sku", "sale_date", "quantity"}

// ImportCSV records sales from a CSV export. Rows are independent:
// each succeeds or fails on its own, with per-line outcomes.
func (s *saleService) ImportCSV(ctx context.Context, r io.Reader) ([]SaleImportOutcome, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) < len(csvImportHeader) {
		return nil, fmt.Errorf("CSV header must contain columns: %s", strings.Join(csvImportHeader, ", "))
	}

	var outcomes []SaleImportOutcome
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			outcomes = append(outcomes, SaleImportOutcome{Line: line, Error: err.Error()})
			continue
		}

		outcome := SaleImportOutcome{Line: line}
		if err := s.importRow(ctx, record); err != nil {
			outcome.Error = err.Error()
		} else {
			outcome.Success = true
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (s *saleService) importRow(ctx context.Context, record []string) error {
	if len(record) < len(csvImportHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(csvImportHeader), len(record))
	}

	orderNumber := strings.TrimSpace(record[0])
	invoiceNumber := strings.TrimSpace(record[1])
	customerEmail := strings.ToLower(strings.TrimSpace(record[3]))
	productSKU := strings.TrimSpace(record[4])
	saleDate := strings.TrimSpace(record[5])

	quantity, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil || quantity < 1 {
		return fmt.Errorf("invalid quantity %q", record[6])
	}

	customer, err := s.custRepo.GetByEmail(ctx, customerEmail)
	if err != nil {
		return fmt.Errorf("unknown customer %q", customerEmail)
	}
	product, err := s.productRepo.GetBySKU(ctx, productSKU)
	if err != nil {
		return fmt.Errorf("unknown product SKU %q", productSKU)
	}

	return s.RecordSale(ctx, &domain.Sale{
		OrderNumber:    orderNumber,
		InvoiceNumber:  invoiceNumber,
		CustomerID:     customer.ID,
		ProductID:      product.ID,
		SaleDate:       saleDate,
		Quantity:       int32(quantity),
		WarrantyMonths: product.WarrantyMonths,
	})
}
