package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/logger"
	"rma-portal-backend/internal/repository"
	"rma-portal-backend/internal/storage"
)

const presignedURLExpiry = 15 * time.Minute

type attachmentService struct {
	attRepo repository.AttachmentRepository
	store   storage.StorageInterface
}

func NewAttachmentService(attRepo repository.AttachmentRepository, store storage.StorageInterface) AttachmentService {
	return &attachmentService{
		attRepo: attRepo,
		store:   store,
	}
}

// RequestUpload validates the declared metadata up front: a direct
// upload request for an invalid file is refused here, unlike the draft
// builder's soft batch filter.
func (s *attachmentService) RequestUpload(ctx context.Context, customerID int32, fileName, contentType string, sizeBytes int64) (*domain.Attachment, string, error) {
	if fileName == "" {
		return nil, "", &domain.ValidationError{Field: "file_name", Message: "required"}
	}
	if !domain.AllowedAttachmentType(contentType) {
		return nil, "", &domain.ValidationError{Field: "content_type", Message: "only JPEG, PNG and PDF are accepted"}
	}
	if sizeBytes <= 0 || sizeBytes > domain.MaxAttachmentBytes {
		return nil, "", &domain.ValidationError{Field: "size_bytes", Message: "must be between 1 byte and 5 MB"}
	}

	key := fmt.Sprintf("%d/%s%s", customerID, uuid.New().String(), filepath.Ext(fileName))

	att := &domain.Attachment{
		CustomerID:  customerID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   sizeBytes,
		StorageKey:  key,
	}
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, "", err
	}

	uploadURL, err := s.store.GeneratePresignedUploadURL(ctx, key, contentType, presignedURLExpiry)
	if err != nil {
		return nil, "", err
	}
	return att, uploadURL, nil
}

func (s *attachmentService) ListRMAAttachments(ctx context.Context, rmaID int32) ([]domain.Attachment, []string, error) {
	atts, err := s.attRepo.ListByRMA(ctx, rmaID)
	if err != nil {
		return nil, nil, err
	}

	urls := make([]string, len(atts))
	for i, att := range atts {
		url, err := s.store.GeneratePresignedDownloadURL(ctx, att.StorageKey, presignedURLExpiry)
		if err != nil {
			return nil, nil, err
		}
		urls[i] = url
	}
	return atts, urls, nil
}

// PurgeExpired deletes pending attachment rows past the grace window
// along with their stored files. Returns how many were removed.
func (s *attachmentService) PurgeExpired(ctx context.Context, olderThanHours int32) (int, error) {
	expired, err := s.attRepo.DeleteExpiredPending(ctx, olderThanHours)
	if err != nil {
		return 0, err
	}
	for _, att := range expired {
		if err := s.store.DeleteFile(ctx, att.StorageKey); err != nil {
			logger.Warn("Failed to delete expired attachment file", "key", att.StorageKey, "error", err)
		}
	}
	return len(expired), nil
}
