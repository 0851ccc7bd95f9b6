package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/logger"
	"rma-portal-backend/internal/repository"
)

var ErrForbidden = errors.New("actor is not allowed to perform this action")

type rmaService struct {
	rmaRepo     repository.RMARepository
	attRepo     repository.AttachmentRepository
	productRepo repository.ProductRepository
	custRepo    repository.CustomerRepository
	emailSvc    EmailService
	noteRepo    repository.NotificationRepository
}

func NewRMAService(
	rmaRepo repository.RMARepository,
	attRepo repository.AttachmentRepository,
	productRepo repository.ProductRepository,
	custRepo repository.CustomerRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) RMAService {
	return &rmaService{
		rmaRepo:     rmaRepo,
		attRepo:     attRepo,
		productRepo: productRepo,
		custRepo:    custRepo,
		emailSvc:    emailSvc,
		noteRepo:    noteRepo,
	}
}

func (s *rmaService) Submit(ctx context.Context, customerID int32, draft domain.Draft) (*domain.RMA, []domain.RejectedFile, error) {
	customer, err := s.custRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.productRepo.GetByID(ctx, draft.ProductID); err != nil {
		return nil, nil, &domain.ValidationError{Field: "product_id", Message: "unknown product"}
	}

	rma, rejected, err := draft.Build(customer.Snapshot(), time.Now())
	if err != nil {
		return nil, rejected, err
	}
	rma.CustomerID = customerID

	if err := s.rmaRepo.Create(ctx, rma); err != nil {
		return nil, rejected, err
	}

	// Link previously uploaded files to the new RMA. A missing key just
	// leaves the file unlinked for the cleanup job to reap.
	for i, att := range rma.Attachments {
		if att.StorageKey == "" {
			continue
		}
		stored, err := s.attRepo.GetByStorageKey(ctx, att.StorageKey)
		if err != nil {
			logger.Warn("Attachment key not found at submission", "rma", rma.RMANumber, "key", att.StorageKey)
			continue
		}
		if err := s.attRepo.LinkToRMA(ctx, stored.ID, rma.ID); err != nil {
			logger.Warn("Failed to link attachment", "rma", rma.RMANumber, "attachment_id", stored.ID, "error", err)
			continue
		}
		rma.Attachments[i].ID = stored.ID
		id := rma.ID
		rma.Attachments[i].RMAID = &id
	}

	_ = s.emailSvc.SendRMASubmitted(ctx, customer.Email, customer.Name, rma.RMANumber)
	notif := &domain.Notification{
		RecipientID:   customerID,
		RecipientRole: domain.RoleCustomer,
		Title:         "RMA Submitted",
		Message:       fmt.Sprintf("Your request %s was received and is pending review", rma.RMANumber),
		Attributes: map[string]string{
			"type":   "RMA_SUBMITTED",
			"rma_id": fmt.Sprintf("%d", rma.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, notif); err != nil {
		logger.Warn("Failed to store submission notification", "rma", rma.RMANumber, "error", err)
	}

	return rma, rejected, nil
}

func (s *rmaService) GetRMA(ctx context.Context, id int32) (*domain.RMA, error) {
	rma, err := s.rmaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rma.StatusHistory, err = s.rmaRepo.ListHistory(ctx, id); err != nil {
		return nil, err
	}
	if rma.Attachments, err = s.attRepo.ListByRMA(ctx, id); err != nil {
		return nil, err
	}
	return rma, nil
}

func (s *rmaService) ListRMAs(ctx context.Context, filter domain.RMAFilter, page, pageSize int32) ([]domain.RMA, int32, error) {
	return s.rmaRepo.List(ctx, filter, page, pageSize)
}

func (s *rmaService) ListCustomerRMAs(ctx context.Context, customerID int32, status domain.RMAStatus, page, pageSize int32) ([]domain.RMA, int32, error) {
	return s.rmaRepo.ListByCustomer(ctx, customerID, status, page, pageSize)
}

// Transition applies one status-machine edge on behalf of an actor.
// Staff may traverse any legal edge; a customer may only close their
// own shipped RMA.
func (s *rmaService) Transition(ctx context.Context, actorID int32, actorRole domain.Role, rmaID int32, req domain.TransitionRequest) (*domain.RMA, error) {
	rma, err := s.rmaRepo.GetByID(ctx, rmaID)
	if err != nil {
		return nil, err
	}

	if !actorRole.IsStaff() {
		customerClose := rma.CustomerID == actorID &&
			rma.Status == domain.RMAStatusShipped &&
			req.To == domain.RMAStatusCompleted
		if !customerClose {
			return nil, ErrForbidden
		}
	}

	req.ActorID = actorID
	expected := rma.Status
	entry, err := domain.ApplyTransition(rma, req)
	if err != nil {
		return nil, err
	}

	if err := s.rmaRepo.UpdateStatus(ctx, rma, expected, entry); err != nil {
		return nil, err
	}
	rma.StatusHistory = append(rma.StatusHistory, *entry)

	s.notifyDecision(ctx, rma)
	return rma, nil
}

// Review runs the staff decision procedure: approve or reject, with
// the warranty determination and rejection reason preconditions checked
// before anything is applied.
func (s *rmaService) Review(ctx context.Context, actorID int32, actorRole domain.Role, rmaID int32, input ReviewInput) (*domain.RMA, error) {
	if !actorRole.IsStaff() {
		return nil, ErrForbidden
	}

	var to domain.RMAStatus
	switch input.Decision {
	case "approve":
		to = domain.RMAStatusApproved
	case "reject":
		to = domain.RMAStatusRejected
	default:
		return nil, &domain.ValidationError{Field: "decision", Message: "must be approve or reject"}
	}

	rma, err := s.rmaRepo.GetByID(ctx, rmaID)
	if err != nil {
		return nil, err
	}

	if rma.RequiresWarrantyCheck && input.WarrantyValid != "" && input.WarrantyValid != domain.WarrantyUnknown {
		if rec := s.WarrantyRecommendation(ctx, rma); rec != domain.WarrantyUnknown && rec != input.WarrantyValid {
			logger.Debug("Reviewer overrode computed warranty recommendation",
				"rma", rma.RMANumber, "computed", rec, "recorded", input.WarrantyValid, "actor", actorID)
		}
	}

	return s.Transition(ctx, actorID, actorRole, rmaID, domain.TransitionRequest{
		To:              to,
		Notes:           input.Notes,
		RejectionReason: input.RejectionReason,
		WarrantyValid:   input.WarrantyValid,
	})
}

// BulkUpdateStatus applies the same kind of transition across many
// RMAs. Items are independent; each reports its own outcome.
func (s *rmaService) BulkUpdateStatus(ctx context.Context, actorID int32, actorRole domain.Role, items []BulkTransitionItem) []BulkOutcome {
	outcomes := make([]BulkOutcome, 0, len(items))
	for _, item := range items {
		_, err := s.Transition(ctx, actorID, actorRole, item.RMAID, item.Req)
		outcome := BulkOutcome{ID: item.RMAID, Success: err == nil}
		if err != nil {
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *rmaService) WarrantyRecommendation(ctx context.Context, rma *domain.RMA) domain.WarrantyDetermination {
	if !rma.RequiresWarrantyCheck || rma.PurchaseDate == nil {
		return domain.WarrantyUnknown
	}
	product, err := s.productRepo.GetByID(ctx, rma.ProductID)
	if err != nil {
		return domain.WarrantyUnknown
	}
	return domain.EvaluateWarranty(*rma.PurchaseDate, int(product.WarrantyMonths), time.Time{})
}

// notifyDecision fans out a best-effort email and in-app notification
// for statuses the customer cares about.
func (s *rmaService) notifyDecision(ctx context.Context, rma *domain.RMA) {
	switch rma.Status {
	case domain.RMAStatusApproved, domain.RMAStatusRejected, domain.RMAStatusShipped, domain.RMAStatusCompleted:
	default:
		return
	}

	_ = s.emailSvc.SendRMADecision(ctx, rma.ContactEmail, rma.ContactName, rma.RMANumber, rma.Status, rma.RejectionReason)

	notif := &domain.Notification{
		RecipientID:   rma.CustomerID,
		RecipientRole: domain.RoleCustomer,
		Title:         "RMA Status Updated",
		Message:       fmt.Sprintf("Request %s is now %s", rma.RMANumber, rma.Status),
		Attributes: map[string]string{
			"type":   "RMA_STATUS",
			"rma_id": fmt.Sprintf("%d", rma.ID),
			"status": string(rma.Status),
		},
	}
	if err := s.noteRepo.Create(ctx, notif); err != nil {
		logger.Warn("Failed to store status notification", "rma", rma.RMANumber, "status", rma.Status, "error", err)
	}
}
