package domain

// Reason is a selectable reason code with its display label.
type Reason struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var returnReasons = []Reason{
	{Value: "shipping_damage", Label: "Shipping Damage"},
	{Value: "wrong_item", Label: "Wrong Item Received"},
	{Value: "defective_on_arrival", Label: "Defective on Arrival (DOA)"},
	{Value: "customer_return", Label: "Change of Mind / Return"},
	{Value: "other_return", Label: "Other Return Reason"},
}

var warrantyReasons = []Reason{
	{Value: "product_failure", Label: "Product Failure / Not Working"},
	{Value: "hardware_defect", Label: "Hardware Defect"},
	{Value: "software_issue", Label: "Software Issue"},
	{Value: "physical_damage", Label: "Physical Damage (may affect warranty)"},
	{Value: "performance_issue", Label: "Performance Issue"},
	{Value: "other_warranty", Label: "Other Issue"},
}

// ReasonsForType returns the ordered reason codes valid for the given RMA
// type. An unknown type yields an empty list, not an error.
func ReasonsForType(t RMAType) []Reason {
	switch t {
	case RMATypeReturn:
		return returnReasons
	case RMATypeWarranty:
		return warrantyReasons
	default:
		return nil
	}
}

// ValidReason reports whether code belongs to the reason set of t.
func ValidReason(t RMAType, code string) bool {
	for _, r := range ReasonsForType(t) {
		if r.Value == code {
			return true
		}
	}
	return false
}
