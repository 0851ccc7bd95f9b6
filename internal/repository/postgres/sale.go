package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

const saleColumns = `id, order_number, invoice_number, customer_id, product_id, sale_date, quantity, serial_number, warranty_months, payment_method, notes, created_on, updated_on`

func scanSale(row rowScanner) (*domain.Sale, error) {
	s := &domain.Sale{}
	err := row.Scan(&s.ID, &s.OrderNumber, &s.InvoiceNumber, &s.CustomerID, &s.ProductID,
		&s.SaleDate, &s.Quantity, &s.SerialNumber, &s.WarrantyMonths, &s.PaymentMethod,
		&s.Notes, &s.CreatedOn, &s.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *saleRepository) Create(ctx context.Context, s *domain.Sale) error {
	query := `INSERT INTO sales (order_number, invoice_number, customer_id, product_id, sale_date, quantity, serial_number, warranty_months, payment_method, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.OrderNumber, s.InvoiceNumber, s.CustomerID, s.ProductID,
		s.SaleDate, s.Quantity, s.SerialNumber, s.WarrantyMonths, s.PaymentMethod, s.Notes,
		time.Now(), time.Now()).Scan(&s.ID)
}

func (r *saleRepository) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return scanSale(r.db.QueryRowContext(ctx, query, id))
}

func (r *saleRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE order_number = $1`
	return scanSale(r.db.QueryRowContext(ctx, query, orderNumber))
}

func (r *saleRepository) Update(ctx context.Context, s *domain.Sale) error {
	query := `UPDATE sales SET invoice_number=$1, customer_id=$2, product_id=$3, sale_date=$4, quantity=$5, serial_number=$6, warranty_months=$7, payment_method=$8, notes=$9, updated_on=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, s.InvoiceNumber, s.CustomerID, s.ProductID, s.SaleDate,
		s.Quantity, s.SerialNumber, s.WarrantyMonths, s.PaymentMethod, s.Notes, time.Now(), s.ID)
	return err
}

func (r *saleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
	return err
}

func (r *saleRepository) List(ctx context.Context, customerID, productID int32, page, pageSize int32) ([]domain.Sale, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if customerID != 0 {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, customerID)
		argIdx++
	}
	if productID != 0 {
		query += fmt.Sprintf(" AND product_id = $%d", argIdx)
		args = append(args, productID)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY sale_date DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, err
		}
		sales = append(sales, *s)
	}
	return sales, count, nil
}
