package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	disabled  bool
}

func NewEmailService(apiKey, fromEmail, fromName string, disabled bool) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		disabled:  disabled,
	}
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, plainText string) error {
	if s.disabled {
		logger.Debug("Email sending disabled, skipping", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", toEmail)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRMASubmitted(ctx context.Context, toEmail, toName, rmaNumber string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your return/warranty request %s. Our team will review it shortly.\n\nBest regards,\nThe RMA Portal Team", toName, rmaNumber)
	return s.send(ctx, toEmail, toName, fmt.Sprintf("RMA %s received", rmaNumber), body)
}

func (s *emailService) SendRMADecision(ctx context.Context, toEmail, toName, rmaNumber string, status domain.RMAStatus, rejectionReason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour request %s is now: %s.", toName, rmaNumber, status)
	if status == domain.RMAStatusRejected && rejectionReason != "" {
		body += fmt.Sprintf("\n\nReason: %s", rejectionReason)
	}
	body += "\n\nBest regards,\nThe RMA Portal Team"
	return s.send(ctx, toEmail, toName, fmt.Sprintf("RMA %s update", rmaNumber), body)
}

func (s *emailService) SendStalePendingDigest(ctx context.Context, toEmail, toName string, rmas []domain.RMA) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThe following requests have been pending review:\n\n", toName)
	for _, rma := range rmas {
		fmt.Fprintf(&b, "  %s — %s (%s), submitted %s\n", rma.RMANumber, rma.Reason, rma.RMAType, rma.SubmittedDate)
	}
	b.WriteString("\nBest regards,\nThe RMA Portal Team")
	return s.send(ctx, toEmail, toName, fmt.Sprintf("%d RMAs awaiting review", len(rmas)), b.String())
}
