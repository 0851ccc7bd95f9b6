package domain

type RMAType string

const (
	RMATypeReturn   RMAType = "return"
	RMATypeWarranty RMAType = "warranty"
)

type RMAStatus string

const (
	RMAStatusPending     RMAStatus = "pending"
	RMAStatusUnderReview RMAStatus = "under_review"
	RMAStatusApproved    RMAStatus = "approved"
	RMAStatusRejected    RMAStatus = "rejected"
	RMAStatusInRepair    RMAStatus = "in_repair"
	RMAStatusShipped     RMAStatus = "shipped"
	RMAStatusCompleted   RMAStatus = "completed"
)

type RMAPriority string

const (
	RMAPriorityLow    RMAPriority = "low"
	RMAPriorityMedium RMAPriority = "medium"
	RMAPriorityHigh   RMAPriority = "high"
)

// WarrantyDetermination is the reviewer-recorded warranty validity.
// It stays Unknown until a staff member records a judgment.
type WarrantyDetermination string

const (
	WarrantyUnknown WarrantyDetermination = "unknown"
	WarrantyValid   WarrantyDetermination = "valid"
	WarrantyExpired WarrantyDetermination = "expired"
)

type RMA struct {
	ID           int32       `json:"id"`
	RMANumber    string      `json:"rma_number"`
	CustomerID   int32       `json:"customer_id"`
	RMAType      RMAType     `json:"rma_type"`
	Reason       string      `json:"reason"`
	Status       RMAStatus   `json:"status"`
	Priority     RMAPriority `json:"priority"`
	ProductID    int32       `json:"product_id"`
	SerialNumber string      `json:"serial_number,omitempty"`
	PurchaseDate *string     `json:"purchase_date,omitempty"`
	ReceiptNumber string     `json:"receipt_number,omitempty"`

	RequiresWarrantyCheck bool                  `json:"requires_warranty_check"`
	WarrantyValid         WarrantyDetermination `json:"warranty_valid"`

	IssueDescription string `json:"issue_description"`
	RejectionReason  string `json:"rejection_reason,omitempty"`
	Notes            string `json:"notes,omitempty"`

	// Contact snapshot fields — captured from the customer profile at
	// submission time. Later profile edits never touch these.
	ContactName     string `json:"contact_name"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	ShippingAddress string `json:"shipping_address"`

	SubmittedDate string `json:"submitted_date"`
	UpdatedOn     string `json:"updated_on"`

	Attachments   []Attachment  `json:"attachments,omitempty"`
	StatusHistory []StatusEntry `json:"status_history,omitempty"`
}

// StatusEntry is one row of the append-only status history. Every
// successful transition appends exactly one.
type StatusEntry struct {
	ID        int32     `json:"id"`
	RMAID     int32     `json:"rma_id"`
	Status    RMAStatus `json:"status"`
	ActorID   int32     `json:"actor_id"`
	Notes     string    `json:"notes,omitempty"`
	CreatedOn string    `json:"created_on"`
}

// RMAFilter narrows staff listings. Zero values mean "no filter".
type RMAFilter struct {
	Status   RMAStatus
	Type     RMAType
	Priority RMAPriority
	FromDate string
	ToDate   string
	Search   string
}
