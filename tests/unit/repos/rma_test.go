package repos

import (
	"context"
	"testing"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func rmaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "rma_number", "customer_id", "rma_type", "reason", "status", "priority",
		"product_id", "serial_number", "purchase_date", "receipt_number",
		"requires_warranty_check", "warranty_valid", "issue_description",
		"rejection_reason", "notes", "contact_name", "contact_email", "contact_phone",
		"shipping_address", "submitted_date", "updated_on",
	})
}

func addRMARow(rows *sqlmock.Rows, id int32, number string, status domain.RMAStatus) *sqlmock.Rows {
	return rows.AddRow(
		id, number, int32(1), "warranty", "product_failure", status, "medium",
		int32(42), "SN-1", "2025-11-20", "R-1",
		true, "unknown", "Device fails",
		"", "", "Dana Smith", "dana@example.com", "555-0100",
		"1 Main St", "2026-02-20", "2026-02-20",
	)
}

func TestRMARepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRMARepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rma := &domain.RMA{
			CustomerID:            1,
			RMAType:               domain.RMATypeWarranty,
			Reason:                "product_failure",
			Status:                domain.RMAStatusPending,
			Priority:              domain.RMAPriorityMedium,
			ProductID:             42,
			RequiresWarrantyCheck: true,
			WarrantyValid:         domain.WarrantyUnknown,
			IssueDescription:      "Device fails",
			ContactName:           "Dana Smith",
			ContactEmail:          "dana@example.com",
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rmas").
			WillReturnRows(sqlmock.NewRows([]string{"id", "rma_number"}).AddRow(100, "RMA-2026-0042"))
		mock.ExpectExec("INSERT INTO rma_status_history").
			WithArgs(int32(100), domain.RMAStatusPending, int32(1), "RMA submitted", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, rma)
		assert.NoError(t, err)
		assert.Equal(t, int32(100), rma.ID)
		assert.Equal(t, "RMA-2026-0042", rma.RMANumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRMARepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRMARepository(db)
	ctx := context.Background()

	rma := &domain.RMA{
		ID:            100,
		Status:        domain.RMAStatusApproved,
		WarrantyValid: domain.WarrantyValid,
	}
	entry := &domain.StatusEntry{RMAID: 100, Status: domain.RMAStatusApproved, ActorID: 7}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rmas SET").
			WithArgs(domain.RMAStatusApproved, domain.WarrantyValid, "", "", sqlmock.AnyArg(), int32(100), domain.RMAStatusUnderReview).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO rma_status_history").
			WithArgs(int32(100), domain.RMAStatusApproved, int32(7), "", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))
		mock.ExpectCommit()

		err := repo.UpdateStatus(ctx, rma, domain.RMAStatusUnderReview, entry)
		assert.NoError(t, err)
		assert.Equal(t, int32(55), entry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stale Status Conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rmas SET").
			WithArgs(domain.RMAStatusApproved, domain.WarrantyValid, "", "", sqlmock.AnyArg(), int32(100), domain.RMAStatusUnderReview).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpdateStatus(ctx, rma, domain.RMAStatusUnderReview, entry)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRMARepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRMARepository(db)
	ctx := context.Background()

	t.Run("Filtered With Search", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WithArgs(domain.RMAStatusPending, "%dana%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM rmas WHERE 1=1").
			WithArgs(domain.RMAStatusPending, "%dana%", int32(20), int32(0)).
			WillReturnRows(addRMARow(rmaRows(), 100, "RMA-2026-0042", domain.RMAStatusPending))

		filter := domain.RMAFilter{Status: domain.RMAStatusPending, Search: "dana"}
		rmas, total, err := repo.List(ctx, filter, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, rmas, 1)
		assert.Equal(t, "RMA-2026-0042", rmas[0].RMANumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRMARepository_ListByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRMARepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	rows := rmaRows()
	addRMARow(rows, 101, "RMA-2026-0043", domain.RMAStatusPending)
	addRMARow(rows, 100, "RMA-2026-0042", domain.RMAStatusApproved)
	mock.ExpectQuery("SELECT (.+) FROM rmas WHERE customer_id").
		WithArgs(int32(1), int32(20), int32(0)).
		WillReturnRows(rows)

	rmas, total, err := repo.ListByCustomer(ctx, 1, "", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), total)
	assert.Len(t, rmas, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRMARepository_ListHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRMARepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "rma_id", "status", "actor_id", "notes", "created_on"}).
		AddRow(1, 100, "pending", 1, "RMA submitted", "2026-02-20").
		AddRow(2, 100, "under_review", 7, "", "2026-02-21")
	mock.ExpectQuery("SELECT (.+) FROM rma_status_history").
		WithArgs(int32(100)).
		WillReturnRows(rows)

	entries, err := repo.ListHistory(ctx, 100)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, domain.RMAStatusPending, entries[0].Status)
	assert.Equal(t, domain.RMAStatusUnderReview, entries[1].Status)
}
