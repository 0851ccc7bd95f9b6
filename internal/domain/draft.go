package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	MaxIssueDescriptionLen = 1000
	MaxAttachmentBytes     = 5 * 1024 * 1024
)

// ValidationError names the draft field that failed and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FileCandidate is an attachment offered at intake, before filtering.
type FileCandidate struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StorageKey  string `json:"storage_key,omitempty"`
}

// RejectedFile pairs a filtered-out candidate with the reason it was
// dropped.
type RejectedFile struct {
	FileCandidate
	Reason string `json:"reason"`
}

var allowedAttachmentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"application/pdf": {},
}

// FilterAttachments applies the intake rules (JPEG/PNG/PDF, 5 MB cap).
// Invalid files are dropped, never an error: the batch always succeeds
// with whatever passed. Both lists are returned so callers can surface
// what was dropped and why.
func FilterAttachments(files []FileCandidate) (accepted []FileCandidate, rejected []RejectedFile) {
	for _, f := range files {
		if _, ok := allowedAttachmentTypes[f.ContentType]; !ok {
			rejected = append(rejected, RejectedFile{FileCandidate: f, Reason: "unsupported file type"})
			continue
		}
		if f.SizeBytes > MaxAttachmentBytes {
			rejected = append(rejected, RejectedFile{FileCandidate: f, Reason: "file exceeds 5 MB limit"})
			continue
		}
		accepted = append(accepted, f)
	}
	return accepted, rejected
}

// AllowedAttachmentType reports whether a MIME type passes the intake
// filter.
func AllowedAttachmentType(contentType string) bool {
	_, ok := allowedAttachmentTypes[contentType]
	return ok
}

// ContactSnapshot is the submitter's contact/shipping info frozen at
// submission time.
type ContactSnapshot struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
}

// Draft accumulates the multi-step submission input. It is a single
// validated aggregate: Build refuses to produce a payload until every
// required stage-1 and stage-2 field is present.
type Draft struct {
	// Stage 1: type and product
	RMAType       RMAType `json:"rma_type"`
	ProductID     int32   `json:"product_id"`
	SerialNumber  string  `json:"serial_number"`
	PurchaseDate  string  `json:"purchase_date"`
	ReceiptNumber string  `json:"receipt_number"`

	// Stage 2: issue detail
	Reason           string          `json:"reason"`
	IssueDescription string          `json:"issue_description"`
	Attachments      []FileCandidate `json:"attachments"`

	Priority RMAPriority `json:"priority"`
}

// ValidateTypeAndProduct checks the stage-1 fields. Warranty drafts
// additionally need a non-future purchase date; the receipt number is
// recommended but never required.
func (d *Draft) ValidateTypeAndProduct(now time.Time) error {
	switch d.RMAType {
	case RMATypeReturn, RMATypeWarranty:
	default:
		return &ValidationError{Field: "rma_type", Message: "must be return or warranty"}
	}
	if d.ProductID == 0 {
		return &ValidationError{Field: "product_id", Message: "required"}
	}
	if d.RMAType == RMATypeWarranty {
		if d.PurchaseDate == "" {
			return &ValidationError{Field: "purchase_date", Message: "required for warranty claims"}
		}
		purchased, err := time.Parse("2006-01-02", d.PurchaseDate)
		if err != nil {
			return &ValidationError{Field: "purchase_date", Message: "must be a YYYY-MM-DD date"}
		}
		if purchased.After(now) {
			return &ValidationError{Field: "purchase_date", Message: "must not be in the future"}
		}
	}
	return nil
}

// ValidateIssueDetail checks the stage-2 fields.
func (d *Draft) ValidateIssueDetail() error {
	if !ValidReason(d.RMAType, d.Reason) {
		return &ValidationError{Field: "reason", Message: fmt.Sprintf("not a valid %s reason", d.RMAType)}
	}
	// The limit is in characters, not bytes.
	switch length := utf8.RuneCountInString(d.IssueDescription); {
	case length == 0:
		return &ValidationError{Field: "issue_description", Message: "required"}
	case length > MaxIssueDescriptionLen:
		return &ValidationError{Field: "issue_description", Message: fmt.Sprintf("exceeds %d characters", MaxIssueDescriptionLen)}
	}
	return nil
}

// Build validates both stages, filters the attachments and produces the
// immutable submission payload with the contact snapshot applied. The
// rejected attachment list is returned so the caller can report what
// was silently dropped.
func (d *Draft) Build(contact ContactSnapshot, now time.Time) (*RMA, []RejectedFile, error) {
	if err := d.ValidateTypeAndProduct(now); err != nil {
		return nil, nil, err
	}
	if err := d.ValidateIssueDetail(); err != nil {
		return nil, nil, err
	}

	accepted, rejected := FilterAttachments(d.Attachments)

	priority := d.Priority
	if priority == "" {
		priority = RMAPriorityMedium
	}

	rma := &RMA{
		RMAType:               d.RMAType,
		Reason:                d.Reason,
		Status:                RMAStatusPending,
		Priority:              priority,
		ProductID:             d.ProductID,
		SerialNumber:          d.SerialNumber,
		ReceiptNumber:         d.ReceiptNumber,
		RequiresWarrantyCheck: d.RMAType == RMATypeWarranty,
		WarrantyValid:         WarrantyUnknown,
		IssueDescription:      d.IssueDescription,
		ContactName:           contact.Name,
		ContactEmail:          contact.Email,
		ContactPhone:          contact.Phone,
		ShippingAddress:       contact.ShippingAddress,
		SubmittedDate:         now.Format("2006-01-02"),
	}
	if d.PurchaseDate != "" {
		pd := d.PurchaseDate
		rma.PurchaseDate = &pd
	}
	for _, f := range accepted {
		rma.Attachments = append(rma.Attachments, Attachment{
			FileName:    f.Name,
			ContentType: f.ContentType,
			SizeBytes:   f.SizeBytes,
			StorageKey:  f.StorageKey,
		})
	}
	return rma, rejected, nil
}
