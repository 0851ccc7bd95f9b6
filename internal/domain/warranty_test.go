package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateWarranty(t *testing.T) {
	evalDate := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Within Period", func(t *testing.T) {
		assert.Equal(t, WarrantyValid, EvaluateWarranty("2026-01-10", 12, evalDate))
	})

	t.Run("Expired", func(t *testing.T) {
		assert.Equal(t, WarrantyExpired, EvaluateWarranty("2024-01-10", 12, evalDate))
	})

	t.Run("Expires Same Day", func(t *testing.T) {
		// 12 months from 2025-06-15 lands exactly on the evaluation
		// date; the warranty still holds through that day.
		assert.Equal(t, WarrantyValid, EvaluateWarranty("2025-06-15", 12, evalDate))
	})

	t.Run("Unknown Inputs", func(t *testing.T) {
		assert.Equal(t, WarrantyUnknown, EvaluateWarranty("", 12, evalDate))
		assert.Equal(t, WarrantyUnknown, EvaluateWarranty("not-a-date", 12, evalDate))
		assert.Equal(t, WarrantyUnknown, EvaluateWarranty("15/06/2025", 12, evalDate))
		assert.Equal(t, WarrantyUnknown, EvaluateWarranty("2025-06-15", 0, evalDate))
		assert.Equal(t, WarrantyUnknown, EvaluateWarranty("2025-06-15", -6, evalDate))
	})

	t.Run("Zero Evaluation Date Uses Now", func(t *testing.T) {
		assert.Equal(t, WarrantyExpired, EvaluateWarranty("2000-01-01", 12, time.Time{}))
	})
}
