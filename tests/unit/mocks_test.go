package unit

import (
	"context"
	"io"
	"time"

	"rma-portal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRMARepo
type MockRMARepo struct {
	mock.Mock
}

func (m *MockRMARepo) Create(ctx context.Context, rma *domain.RMA) error {
	args := m.Called(ctx, rma)
	return args.Error(0)
}
func (m *MockRMARepo) GetByID(ctx context.Context, id int32) (*domain.RMA, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RMA), args.Error(1)
}
func (m *MockRMARepo) GetByNumber(ctx context.Context, rmaNumber string) (*domain.RMA, error) {
	args := m.Called(ctx, rmaNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RMA), args.Error(1)
}
func (m *MockRMARepo) UpdateStatus(ctx context.Context, rma *domain.RMA, expectedStatus domain.RMAStatus, entry *domain.StatusEntry) error {
	args := m.Called(ctx, rma, expectedStatus, entry)
	return args.Error(0)
}
func (m *MockRMARepo) List(ctx context.Context, filter domain.RMAFilter, page, pageSize int32) ([]domain.RMA, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.RMA), args.Get(1).(int32), args.Error(2)
}
func (m *MockRMARepo) ListByCustomer(ctx context.Context, customerID int32, status domain.RMAStatus, page, pageSize int32) ([]domain.RMA, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.RMA), args.Get(1).(int32), args.Error(2)
}
func (m *MockRMARepo) ListHistory(ctx context.Context, rmaID int32) ([]domain.StatusEntry, error) {
	args := m.Called(ctx, rmaID)
	return args.Get(0).([]domain.StatusEntry), args.Error(1)
}
func (m *MockRMARepo) ListStalePending(ctx context.Context, olderThanDays int32) ([]domain.RMA, error) {
	args := m.Called(ctx, olderThanDays)
	return args.Get(0).([]domain.RMA), args.Error(1)
}

// MockAttachmentRepo
type MockAttachmentRepo struct {
	mock.Mock
}

func (m *MockAttachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}
func (m *MockAttachmentRepo) GetByID(ctx context.Context, id int32) (*domain.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}
func (m *MockAttachmentRepo) GetByStorageKey(ctx context.Context, key string) (*domain.Attachment, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}
func (m *MockAttachmentRepo) LinkToRMA(ctx context.Context, attachmentID, rmaID int32) error {
	args := m.Called(ctx, attachmentID, rmaID)
	return args.Error(0)
}
func (m *MockAttachmentRepo) ListByRMA(ctx context.Context, rmaID int32) ([]domain.Attachment, error) {
	args := m.Called(ctx, rmaID)
	return args.Get(0).([]domain.Attachment), args.Error(1)
}
func (m *MockAttachmentRepo) DeleteExpiredPending(ctx context.Context, olderThanHours int32) ([]domain.Attachment, error) {
	args := m.Called(ctx, olderThanHours)
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepo) List(ctx context.Context, search, category string, activeOnly bool, page, pageSize int32) ([]domain.Product, int32, error) {
	args := m.Called(ctx, search, category, activeOnly, page, pageSize)
	return args.Get(0).([]domain.Product), args.Get(1).(int32), args.Error(2)
}
func (m *MockProductRepo) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, search, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}

// MockSaleRepo
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSaleRepo) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) Update(ctx context.Context, s *domain.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSaleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSaleRepo) List(ctx context.Context, customerID, productID int32, page, pageSize int32) ([]domain.Sale, int32, error) {
	args := m.Called(ctx, customerID, productID, page, pageSize)
	return args.Get(0).([]domain.Sale), args.Get(1).(int32), args.Error(2)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) Create(ctx context.Context, u *domain.StaffUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockStaffRepo) GetByID(ctx context.Context, id int32) (*domain.StaffUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}
func (m *MockStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}
func (m *MockStaffRepo) Update(ctx context.Context, u *domain.StaffUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockStaffRepo) List(ctx context.Context) ([]domain.StaffUser, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StaffUser), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, recipientID int32, role domain.Role, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, recipientID, role, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, recipientID int32) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRMASubmitted(ctx context.Context, toEmail, toName, rmaNumber string) error {
	args := m.Called(ctx, toEmail, toName, rmaNumber)
	return args.Error(0)
}
func (m *MockEmailService) SendRMADecision(ctx context.Context, toEmail, toName, rmaNumber string, status domain.RMAStatus, rejectionReason string) error {
	args := m.Called(ctx, toEmail, toName, rmaNumber, status, rejectionReason)
	return args.Error(0)
}
func (m *MockEmailService) SendStalePendingDigest(ctx context.Context, toEmail, toName string, rmas []domain.RMA) error {
	args := m.Called(ctx, toEmail, toName, rmas)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
