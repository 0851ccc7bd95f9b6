package postgres

import (
	"context"
	"database/sql"
	"time"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type attachmentRepository struct {
	db *sql.DB
}

func NewAttachmentRepository(db *sql.DB) repository.AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, att *domain.Attachment) error {
	query := `INSERT INTO attachments (rma_id, customer_id, file_name, content_type, size_bytes, storage_key, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, att.RMAID, att.CustomerID, att.FileName, att.ContentType, att.SizeBytes, att.StorageKey, time.Now()).Scan(&att.ID)
}

func (r *attachmentRepository) GetByID(ctx context.Context, id int32) (*domain.Attachment, error) {
	att := &domain.Attachment{}
	query := `SELECT id, rma_id, customer_id, file_name, content_type, size_bytes, storage_key, created_on FROM attachments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&att.ID, &att.RMAID, &att.CustomerID, &att.FileName, &att.ContentType, &att.SizeBytes, &att.StorageKey, &att.CreatedOn)
	if err != nil {
		return nil, err
	}
	return att, nil
}

func (r *attachmentRepository) GetByStorageKey(ctx context.Context, key string) (*domain.Attachment, error) {
	att := &domain.Attachment{}
	query := `SELECT id, rma_id, customer_id, file_name, content_type, size_bytes, storage_key, created_on FROM attachments WHERE storage_key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&att.ID, &att.RMAID, &att.CustomerID, &att.FileName, &att.ContentType, &att.SizeBytes, &att.StorageKey, &att.CreatedOn)
	if err != nil {
		return nil, err
	}
	return att, nil
}

func (r *attachmentRepository) LinkToRMA(ctx context.Context, attachmentID, rmaID int32) error {
	query := `UPDATE attachments SET rma_id=$1 WHERE id=$2 AND rma_id IS NULL`
	_, err := r.db.ExecContext(ctx, query, rmaID, attachmentID)
	return err
}

func (r *attachmentRepository) ListByRMA(ctx context.Context, rmaID int32) ([]domain.Attachment, error) {
	query := `SELECT id, rma_id, customer_id, file_name, content_type, size_bytes, storage_key, created_on FROM attachments WHERE rma_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, rmaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var atts []domain.Attachment
	for rows.Next() {
		var att domain.Attachment
		if err := rows.Scan(&att.ID, &att.RMAID, &att.CustomerID, &att.FileName, &att.ContentType, &att.SizeBytes, &att.StorageKey, &att.CreatedOn); err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}
	return atts, nil
}

// DeleteExpiredPending removes attachment rows that were never linked to
// an RMA within the grace window and returns them so the caller can
// delete the underlying files.
func (r *attachmentRepository) DeleteExpiredPending(ctx context.Context, olderThanHours int32) ([]domain.Attachment, error) {
	query := `DELETE FROM attachments WHERE rma_id IS NULL AND created_on < now() - ($1 || ' hours')::interval
	          RETURNING id, rma_id, customer_id, file_name, content_type, size_bytes, storage_key, created_on`
	rows, err := r.db.QueryContext(ctx, query, olderThanHours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var atts []domain.Attachment
	for rows.Next() {
		var att domain.Attachment
		if err := rows.Scan(&att.ID, &att.RMAID, &att.CustomerID, &att.FileName, &att.ContentType, &att.SizeBytes, &att.StorageKey, &att.CreatedOn); err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}
	return atts, nil
}
