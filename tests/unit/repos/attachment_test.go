package repos

import (
	"context"
	"testing"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAttachmentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAttachmentRepository(db)
	ctx := context.Background()

	att := &domain.Attachment{
		CustomerID:  1,
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		StorageKey:  "1/abc.jpg",
	}

	mock.ExpectQuery("INSERT INTO attachments").
		WithArgs(nil, int32(1), "photo.jpg", "image/jpeg", int64(1024), "1/abc.jpg", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	err = repo.Create(ctx, att)
	assert.NoError(t, err)
	assert.Equal(t, int32(9), att.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_LinkToRMA(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAttachmentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE attachments SET rma_id").
		WithArgs(int32(100), int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.LinkToRMA(ctx, 9, 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_DeleteExpiredPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAttachmentRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "rma_id", "customer_id", "file_name", "content_type", "size_bytes", "storage_key", "created_on"}).
		AddRow(9, nil, 1, "photo.jpg", "image/jpeg", 1024, "1/abc.jpg", "2026-02-20")
	mock.ExpectQuery("DELETE FROM attachments WHERE rma_id IS NULL").
		WithArgs(int32(24)).
		WillReturnRows(rows)

	expired, err := repo.DeleteExpiredPending(ctx, 24)
	assert.NoError(t, err)
	assert.Len(t, expired, 1)
	assert.Nil(t, expired[0].RMAID)
	assert.Equal(t, "1/abc.jpg", expired[0].StorageKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
