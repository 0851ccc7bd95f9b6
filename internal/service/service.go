package service

import (
	"context"
	"io"

	"rma-portal-backend/internal/domain"
)

type AuthService interface {
	RegisterCustomer(ctx context.Context, name, email, phone, address, password string) (*domain.Customer, string, error)
	CustomerLogin(ctx context.Context, email, password string) (*domain.Customer, string, error)
	StaffLogin(ctx context.Context, email, password string) (*domain.StaffUser, string, error)
	CreateStaffUser(ctx context.Context, name, email, password string, role domain.Role) (*domain.StaffUser, error)
	Profile(ctx context.Context, id int32, role domain.Role) (interface{}, error)
}

// ReviewInput is the staff-side decision over a pending or
// under-review RMA.
type ReviewInput struct {
	Decision        string                       `json:"decision"` // "approve" or "reject"
	WarrantyValid   domain.WarrantyDetermination `json:"warranty_valid,omitempty"`
	RejectionReason string                       `json:"rejection_reason,omitempty"`
	Notes           string                       `json:"notes,omitempty"`
}

// BulkTransitionItem is one RMA in a bulk status update.
type BulkTransitionItem struct {
	RMAID int32                    `json:"rma_id"`
	Req   domain.TransitionRequest `json:"request"`
}

// BulkOutcome reports one item's result; bulk updates are not atomic
// across items.
type BulkOutcome struct {
	ID      int32  `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type RMAService interface {
	Submit(ctx context.Context, customerID int32, draft domain.Draft) (*domain.RMA, []domain.RejectedFile, error)
	GetRMA(ctx context.Context, id int32) (*domain.RMA, error)
	ListRMAs(ctx context.Context, filter domain.RMAFilter, page, pageSize int32) ([]domain.RMA, int32, error)
	ListCustomerRMAs(ctx context.Context, customerID int32, status domain.RMAStatus, page, pageSize int32) ([]domain.RMA, int32, error)
	Transition(ctx context.Context, actorID int32, actorRole domain.Role, rmaID int32, req domain.TransitionRequest) (*domain.RMA, error)
	Review(ctx context.Context, actorID int32, actorRole domain.Role, rmaID int32, input ReviewInput) (*domain.RMA, error)
	BulkUpdateStatus(ctx context.Context, actorID int32, actorRole domain.Role, items []BulkTransitionItem) []BulkOutcome
	// WarrantyRecommendation computes the evaluator's advisory result
	// from the RMA's purchase date and its product's warranty period.
	WarrantyRecommendation(ctx context.Context, rma *domain.RMA) domain.WarrantyDetermination
}

type ProductService interface {
	AddProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id int32) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id int32) error
	ListProducts(ctx context.Context, search, category string, activeOnly bool, page, pageSize int32) ([]domain.Product, int32, error)
	ListCategories(ctx context.Context) ([]string, error)
	BulkDelete(ctx context.Context, ids []int32) []BulkOutcome
	BulkSetActive(ctx context.Context, ids []int32, active bool) []BulkOutcome
}

type CustomerService interface {
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id int32, name, email, phone, address string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error)
	SetActive(ctx context.Context, id int32, active bool) error
}

// SaleImportOutcome reports one CSV row's result.
type SaleImportOutcome struct {
	Line    int    `json:"line"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SaleService interface {
	RecordSale(ctx context.Context, s *domain.Sale) error
	GetSale(ctx context.Context, id int32) (*domain.Sale, error)
	UpdateSale(ctx context.Context, s *domain.Sale) error
	DeleteSale(ctx context.Context, id int32) error
	ListSales(ctx context.Context, customerID, productID int32, page, pageSize int32) ([]domain.Sale, int32, error)
	ImportCSV(ctx context.Context, r io.Reader) ([]SaleImportOutcome, error)
}

type AttachmentService interface {
	// RequestUpload validates the file metadata, records a pending
	// attachment and returns it with a presigned upload URL.
	RequestUpload(ctx context.Context, customerID int32, fileName, contentType string, sizeBytes int64) (*domain.Attachment, string, error)
	ListRMAAttachments(ctx context.Context, rmaID int32) ([]domain.Attachment, []string, error)
	PurgeExpired(ctx context.Context, olderThanHours int32) (int, error)
}

type EmailService interface {
	SendRMASubmitted(ctx context.Context, toEmail, toName, rmaNumber string) error
	SendRMADecision(ctx context.Context, toEmail, toName, rmaNumber string, status domain.RMAStatus, rejectionReason string) error
	SendStalePendingDigest(ctx context.Context, toEmail, toName string, rmas []domain.RMA) error
}

type NotificationService interface {
	Notify(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, recipientID int32, role domain.Role, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, recipientID int32) error
}
