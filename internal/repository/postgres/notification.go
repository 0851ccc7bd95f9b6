package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	attrs, err := json.Marshal(n.Attributes)
	if err != nil {
		return err
	}
	query := `INSERT INTO notifications (recipient_id, recipient_role, title, message, attributes, read, created_on)
	          VALUES ($1, $2, $3, $4, $5, false, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, n.RecipientID, n.RecipientRole, n.Title, n.Message, attrs, time.Now()).Scan(&n.ID)
}

func (r *notificationRepository) List(ctx context.Context, recipientID int32, role domain.Role, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE recipient_id = $1 AND recipient_role = $2`
	if err := r.db.QueryRowContext(ctx, countQuery, recipientID, role).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, recipient_id, recipient_role, title, message, attributes, read, created_on
	          FROM notifications WHERE recipient_id = $1 AND recipient_role = $2
	          ORDER BY created_on DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, recipientID, role, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var attrs []byte
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.RecipientRole, &n.Title, &n.Message, &attrs, &n.Read, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &n.Attributes); err != nil {
				return nil, 0, err
			}
		}
		notes = append(notes, n)
	}
	return notes, count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, recipientID int32) error {
	query := `UPDATE notifications SET read = true WHERE id = $1 AND recipient_id = $2`
	_, err := r.db.ExecContext(ctx, query, id, recipientID)
	return err
}
