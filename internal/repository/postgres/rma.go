package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type rmaRepository struct {
	db *sql.DB
}

func NewRMARepository(db *sql.DB) repository.RMARepository {
	return &rmaRepository{db: db}
}

const rmaColumns = `id, rma_number, customer_id, rma_type, reason, status, priority, product_id, serial_number, purchase_date, receipt_number, requires_warranty_check, warranty_valid, issue_description, rejection_reason, notes, contact_name, contact_email, contact_phone, shipping_address, submitted_date, updated_on`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRMA(row rowScanner) (*domain.RMA, error) {
	rma := &domain.RMA{}
	err := row.Scan(&rma.ID, &rma.RMANumber, &rma.CustomerID, &rma.RMAType, &rma.Reason,
		&rma.Status, &rma.Priority, &rma.ProductID, &rma.SerialNumber, &rma.PurchaseDate,
		&rma.ReceiptNumber, &rma.RequiresWarrantyCheck, &rma.WarrantyValid,
		&rma.IssueDescription, &rma.RejectionReason, &rma.Notes,
		&rma.ContactName, &rma.ContactEmail, &rma.ContactPhone, &rma.ShippingAddress,
		&rma.SubmittedDate, &rma.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rma, nil
}

// Create inserts the RMA, allocates its number from rma_number_seq and
// appends the initial pending history entry, all in one transaction.
func (r *rmaRepository) Create(ctx context.Context, rma *domain.RMA) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO rmas (rma_number, customer_id, rma_type, reason, status, priority, product_id, serial_number, purchase_date, receipt_number, requires_warranty_check, warranty_valid, issue_description, contact_name, contact_email, contact_phone, shipping_address, submitted_date, updated_on)
	          VALUES ('RMA-' || to_char(now(), 'YYYY') || '-' || lpad(nextval('rma_number_seq')::text, 4, '0'), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	          RETURNING id, rma_number`
	err = tx.QueryRowContext(ctx, query, rma.CustomerID, rma.RMAType, rma.Reason, rma.Status, rma.Priority,
		rma.ProductID, rma.SerialNumber, rma.PurchaseDate, rma.ReceiptNumber,
		rma.RequiresWarrantyCheck, rma.WarrantyValid, rma.IssueDescription,
		rma.ContactName, rma.ContactEmail, rma.ContactPhone, rma.ShippingAddress,
		time.Now(), time.Now()).Scan(&rma.ID, &rma.RMANumber)
	if err != nil {
		return err
	}

	histQuery := `INSERT INTO rma_status_history (rma_id, status, actor_id, notes, created_on) VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, histQuery, rma.ID, rma.Status, rma.CustomerID, "RMA submitted", time.Now()); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rmaRepository) GetByID(ctx context.Context, id int32) (*domain.RMA, error) {
	query := `SELECT ` + rmaColumns + ` FROM rmas WHERE id = $1`
	return scanRMA(r.db.QueryRowContext(ctx, query, id))
}

func (r *rmaRepository) GetByNumber(ctx context.Context, rmaNumber string) (*domain.RMA, error) {
	query := `SELECT ` + rmaColumns + ` FROM rmas WHERE rma_number = $1`
	return scanRMA(r.db.QueryRowContext(ctx, query, rmaNumber))
}

// UpdateStatus writes the transitioned RMA back conditionally: the row
// only changes while the persisted status still equals expectedStatus.
// A concurrent transition that got there first leaves zero rows
// affected, which surfaces as a stale-state ErrIllegalTransition.
func (r *rmaRepository) UpdateStatus(ctx context.Context, rma *domain.RMA, expectedStatus domain.RMAStatus, entry *domain.StatusEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE rmas SET status=$1, warranty_valid=$2, rejection_reason=$3, notes=$4, updated_on=$5 WHERE id=$6 AND status=$7`
	res, err := tx.ExecContext(ctx, query, rma.Status, rma.WarrantyValid, rma.RejectionReason, rma.Notes, time.Now(), rma.ID, expectedStatus)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: rma %d no longer in status %s", domain.ErrIllegalTransition, rma.ID, expectedStatus)
	}

	histQuery := `INSERT INTO rma_status_history (rma_id, status, actor_id, notes, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRowContext(ctx, histQuery, entry.RMAID, entry.Status, entry.ActorID, entry.Notes, time.Now()).Scan(&entry.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rmaRepository) List(ctx context.Context, filter domain.RMAFilter, page, pageSize int32) ([]domain.RMA, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rmaColumns + ` FROM rmas WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	addArg := func(clause string, val interface{}) {
		query += fmt.Sprintf(clause, argIdx)
		args = append(args, val)
		argIdx++
	}

	if filter.Status != "" {
		addArg(" AND status = $%d", filter.Status)
	}
	if filter.Type != "" {
		addArg(" AND rma_type = $%d", filter.Type)
	}
	if filter.Priority != "" {
		addArg(" AND priority = $%d", filter.Priority)
	}
	if filter.FromDate != "" {
		addArg(" AND submitted_date >= $%d", filter.FromDate)
	}
	if filter.ToDate != "" {
		addArg(" AND submitted_date <= $%d", filter.ToDate)
	}
	if filter.Search != "" {
		// one bound pattern, reused for every searchable column
		query += fmt.Sprintf(" AND (rma_number ILIKE $%d OR contact_name ILIKE $%d OR contact_email ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY submitted_date DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rmas []domain.RMA
	for rows.Next() {
		rma, err := scanRMA(rows)
		if err != nil {
			return nil, 0, err
		}
		rmas = append(rmas, *rma)
	}
	return rmas, count, nil
}

func (r *rmaRepository) ListByCustomer(ctx context.Context, customerID int32, status domain.RMAStatus, page, pageSize int32) ([]domain.RMA, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rmaColumns + ` FROM rmas WHERE customer_id = $1`

	args := []interface{}{customerID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY submitted_date DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rmas []domain.RMA
	for rows.Next() {
		rma, err := scanRMA(rows)
		if err != nil {
			return nil, 0, err
		}
		rmas = append(rmas, *rma)
	}
	return rmas, count, nil
}

func (r *rmaRepository) ListHistory(ctx context.Context, rmaID int32) ([]domain.StatusEntry, error) {
	query := `SELECT id, rma_id, status, actor_id, notes, created_on FROM rma_status_history WHERE rma_id = $1 ORDER BY created_on ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, rmaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.StatusEntry
	for rows.Next() {
		var e domain.StatusEntry
		if err := rows.Scan(&e.ID, &e.RMAID, &e.Status, &e.ActorID, &e.Notes, &e.CreatedOn); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *rmaRepository) ListStalePending(ctx context.Context, olderThanDays int32) ([]domain.RMA, error) {
	query := `SELECT ` + rmaColumns + ` FROM rmas WHERE status = $1 AND submitted_date < now() - ($2 || ' days')::interval ORDER BY submitted_date ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.RMAStatusPending, olderThanDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rmas []domain.RMA
	for rows.Next() {
		rma, err := scanRMA(rows)
		if err != nil {
			return nil, err
		}
		rmas = append(rmas, *rma)
	}
	return rmas, nil
}
