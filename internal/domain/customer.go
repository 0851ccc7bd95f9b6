package domain

type Customer struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IsActive     bool   `json:"is_active"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}

// Snapshot freezes the customer's current contact details for an RMA
// submission.
func (c *Customer) Snapshot() ContactSnapshot {
	return ContactSnapshot{
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		ShippingAddress: c.Address,
	}
}
