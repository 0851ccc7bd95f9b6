package domain

import "time"

// EvaluateWarranty computes the advisory warranty recommendation for a
// purchase date and warranty period. Reviewers may override it; the
// result never gates a transition on its own.
//
// purchaseDate uses the 2006-01-02 layout; empty or unparseable input
// yields WarrantyUnknown. A zero evaluation date means "now".
func EvaluateWarranty(purchaseDate string, warrantyMonths int, evaluationDate time.Time) WarrantyDetermination {
	if purchaseDate == "" || warrantyMonths <= 0 {
		return WarrantyUnknown
	}
	purchased, err := time.Parse("2006-01-02", purchaseDate)
	if err != nil {
		return WarrantyUnknown
	}
	if evaluationDate.IsZero() {
		evaluationDate = time.Now()
	}
	expires := purchased.AddDate(0, warrantyMonths, 0)
	if evaluationDate.After(expires) {
		return WarrantyExpired
	}
	return WarrantyValid
}
