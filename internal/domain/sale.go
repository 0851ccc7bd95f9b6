package domain

type Sale struct {
	ID             int32  `json:"id"`
	OrderNumber    string `json:"order_number"`
	InvoiceNumber  string `json:"invoice_number"`
	CustomerID     int32  `json:"customer_id"`
	ProductID      int32  `json:"product_id"`
	SaleDate       string `json:"sale_date"`
	Quantity       int32  `json:"quantity"`
	SerialNumber   string `json:"serial_number,omitempty"`
	WarrantyMonths int32  `json:"warranty_months"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedOn      string `json:"created_on"`
	UpdatedOn      string `json:"updated_on"`
}
