package service

import (
	"context"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) Notify(ctx context.Context, n *domain.Notification) error {
	return s.noteRepo.Create(ctx, n)
}

func (s *notificationService) List(ctx context.Context, recipientID int32, role domain.Role, limit, offset int32) ([]domain.Notification, int32, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.noteRepo.List(ctx, recipientID, role, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id, recipientID int32) error {
	return s.noteRepo.MarkAsRead(ctx, id, recipientID)
}
