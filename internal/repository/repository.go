package repository

import (
	"context"
	"rma-portal-backend/internal/domain"
)

type RMARepository interface {
	Create(ctx context.Context, rma *domain.RMA) error
	GetByID(ctx context.Context, id int32) (*domain.RMA, error)
	GetByNumber(ctx context.Context, rmaNumber string) (*domain.RMA, error)
	// UpdateStatus commits a transition conditionally: the row is
	// updated only while its persisted status still equals
	// expectedStatus, and the history entry is inserted in the same
	// transaction. A stale expectation fails with
	// domain.ErrIllegalTransition.
	UpdateStatus(ctx context.Context, rma *domain.RMA, expectedStatus domain.RMAStatus, entry *domain.StatusEntry) error
	List(ctx context.Context, filter domain.RMAFilter, page, pageSize int32) ([]domain.RMA, int32, error)
	ListByCustomer(ctx context.Context, customerID int32, status domain.RMAStatus, page, pageSize int32) ([]domain.RMA, int32, error)
	ListHistory(ctx context.Context, rmaID int32) ([]domain.StatusEntry, error)
	ListStalePending(ctx context.Context, olderThanDays int32) ([]domain.RMA, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) error
	GetByID(ctx context.Context, id int32) (*domain.Attachment, error)
	GetByStorageKey(ctx context.Context, key string) (*domain.Attachment, error)
	LinkToRMA(ctx context.Context, attachmentID, rmaID int32) error
	ListByRMA(ctx context.Context, rmaID int32) ([]domain.Attachment, error)
	DeleteExpiredPending(ctx context.Context, olderThanHours int32) ([]domain.Attachment, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, search, category string, activeOnly bool, page, pageSize int32) ([]domain.Product, int32, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) error
	GetByID(ctx context.Context, id int32) (*domain.Sale, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error)
	Update(ctx context.Context, s *domain.Sale) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, customerID, productID int32, page, pageSize int32) ([]domain.Sale, int32, error)
}

type StaffRepository interface {
	Create(ctx context.Context, u *domain.StaffUser) error
	GetByID(ctx context.Context, id int32) (*domain.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	Update(ctx context.Context, u *domain.StaffUser) error
	List(ctx context.Context) ([]domain.StaffUser, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, recipientID int32, role domain.Role, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, recipientID int32) error
}
