package domain

type Product struct {
	ID             int32  `json:"id"`
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Brand          string `json:"brand"`
	PriceCents     int32  `json:"price_cents"`
	StockQuantity  int32  `json:"stock_quantity"`
	WarrantyMonths int32  `json:"default_warranty_months"`
	IsActive       bool   `json:"is_active"`
	CreatedOn      string `json:"created_on"`
	UpdatedOn      string `json:"updated_on"`
}
