package handlers

import (
	"context"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockRMAService
type MockRMAService struct {
	mock.Mock
}

func (m *MockRMAService) Submit(ctx context.Context, customerID int32, draft domain.Draft) (*domain.RMA, []domain.RejectedFile, error) {
	args := m.Called(ctx, customerID, draft)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.RMA), args.Get(1).([]domain.RejectedFile), args.Error(2)
}
func (m *MockRMAService) GetRMA(ctx context.Context, id int32) (*domain.RMA, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RMA), args.Error(1)
}
func (m *MockRMAService) ListRMAs(ctx context.Context, filter domain.RMAFilter, page, pageSize int32) ([]domain.RMA, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.RMA), args.Get(1).(int32), args.Error(2)
}
func (m *MockRMAService) ListCustomerRMAs(ctx context.Context, customerID int32, status domain.RMAStatus, page, pageSize int32) ([]domain.RMA, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.RMA), args.Get(1).(int32), args.Error(2)
}
func (m *MockRMAService) Transition(ctx context.Context, actorID int32, actorRole domain.Role, rmaID int32, req domain.TransitionRequest) (*domain.RMA, error) {
	args := m.Called(ctx, actorID, actorRole, rmaID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RMA), args.Error(1)
}
func (m *MockRMAService) Review(ctx context.Context, actorID int32, actorRole domain.Role, rmaID int32, input service.ReviewInput) (*domain.RMA, error) {
	args := m.Called(ctx, actorID, actorRole, rmaID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RMA), args.Error(1)
}
func (m *MockRMAService) BulkUpdateStatus(ctx context.Context, actorID int32, actorRole domain.Role, items []service.BulkTransitionItem) []service.BulkOutcome {
	args := m.Called(ctx, actorID, actorRole, items)
	return args.Get(0).([]service.BulkOutcome)
}
func (m *MockRMAService) WarrantyRecommendation(ctx context.Context, rma *domain.RMA) domain.WarrantyDetermination {
	args := m.Called(ctx, rma)
	return args.Get(0).(domain.WarrantyDetermination)
}

// MockAttachmentService
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) RequestUpload(ctx context.Context, customerID int32, fileName, contentType string, sizeBytes int64) (*domain.Attachment, string, error) {
	args := m.Called(ctx, customerID, fileName, contentType, sizeBytes)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Attachment), args.String(1), args.Error(2)
}
func (m *MockAttachmentService) ListRMAAttachments(ctx context.Context, rmaID int32) ([]domain.Attachment, []string, error) {
	args := m.Called(ctx, rmaID)
	return args.Get(0).([]domain.Attachment), args.Get(1).([]string), args.Error(2)
}
func (m *MockAttachmentService) PurgeExpired(ctx context.Context, olderThanHours int32) (int, error) {
	args := m.Called(ctx, olderThanHours)
	return args.Int(0), args.Error(1)
}
