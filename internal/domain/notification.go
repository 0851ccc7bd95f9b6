package domain

type Notification struct {
	ID            int32             `json:"id"`
	RecipientID   int32             `json:"recipient_id"`
	RecipientRole Role              `json:"recipient_role"`
	Title         string            `json:"title"`
	Message       string            `json:"message"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	Read          bool              `json:"read"`
	CreatedOn     string            `json:"created_on"`
}
