package unit

import (
	"context"
	"testing"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAttachmentServiceForTest() (service.AttachmentService, *MockAttachmentRepo, *MockStorage) {
	attRepo := new(MockAttachmentRepo)
	store := new(MockStorage)
	return service.NewAttachmentService(attRepo, store), attRepo, store
}

func TestAttachmentService_RequestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, attRepo, store := newAttachmentServiceForTest()
		attRepo.On("Create", ctx, mock.AnythingOfType("*domain.Attachment")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Attachment).ID = 9
		}).Return(nil)
		store.On("GeneratePresignedUploadURL", ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
			Return("http://localhost:8080/api/v1/upload/tok?key=1/x.jpg", nil)

		att, url, err := svc.RequestUpload(ctx, 1, "photo.jpg", "image/jpeg", 1024)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), att.ID)
		assert.Nil(t, att.RMAID, "upload starts pending, unlinked")
		assert.Contains(t, att.StorageKey, "1/")
		assert.Contains(t, att.StorageKey, ".jpg")
		assert.NotEmpty(t, url)
	})

	t.Run("Rejected Type", func(t *testing.T) {
		svc, _, _ := newAttachmentServiceForTest()
		_, _, err := svc.RequestUpload(ctx, 1, "clip.mp4", "video/mp4", 1024)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Oversize", func(t *testing.T) {
		svc, _, _ := newAttachmentServiceForTest()
		_, _, err := svc.RequestUpload(ctx, 1, "big.png", "image/png", domain.MaxAttachmentBytes+1)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestAttachmentService_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	svc, attRepo, store := newAttachmentServiceForTest()

	expired := []domain.Attachment{
		{ID: 1, StorageKey: "1/a.jpg"},
		{ID: 2, StorageKey: "2/b.pdf"},
	}
	attRepo.On("DeleteExpiredPending", ctx, int32(24)).Return(expired, nil)
	store.On("DeleteFile", ctx, "1/a.jpg").Return(nil)
	store.On("DeleteFile", ctx, "2/b.pdf").Return(assert.AnError) // file errors never fail the purge

	count, err := svc.PurgeExpired(ctx, 24)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	store.AssertExpectations(t)
}
