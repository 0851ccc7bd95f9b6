package postgres

import (
	"database/sql"
	"rma-portal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RMARepository
	repository.AttachmentRepository
	repository.ProductRepository
	repository.CustomerRepository
	repository.SaleRepository
	repository.StaffRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		RMARepository:          NewRMARepository(db),
		AttachmentRepository:   NewAttachmentRepository(db),
		ProductRepository:      NewProductRepository(db),
		CustomerRepository:     NewCustomerRepository(db),
		SaleRepository:         NewSaleRepository(db),
		StaffRepository:        NewStaffRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
