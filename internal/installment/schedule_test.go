package installment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleEvenSplit(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	plan, err := NewSchedule(3000, 0, 3, start)
	require.NoError(t, err)

	assert.True(t, plan.Enabled)
	assert.Equal(t, 3000.0, plan.TotalAmount)
	require.Len(t, plan.Installments, 3)

	for i, inst := range plan.Installments {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, 1000.0, inst.Amount)
		assert.False(t, inst.Paid)
		assert.Equal(t, start.AddDate(0, i+1, 0), inst.DueDate)
	}
}

func TestNewScheduleDownPaymentAndRounding(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	plan, err := NewSchedule(1000, 100, 3, start)
	require.NoError(t, err)

	// 900 financed: 300 each, no remainder
	assert.Equal(t, 100.0, plan.DownPayment)
	assert.Equal(t, 300.0, plan.Installments[0].Amount)

	plan, err = NewSchedule(1000, 0, 3, start)
	require.NoError(t, err)

	// 333.33 + 333.33 + 333.34 = 1000
	assert.Equal(t, 333.33, plan.Installments[0].Amount)
	assert.Equal(t, 333.33, plan.Installments[1].Amount)
	assert.Equal(t, 333.34, plan.Installments[2].Amount)

	var sum float64
	for _, inst := range plan.Installments {
		sum += inst.Amount
	}
	assert.InDelta(t, 1000, sum, 0.001)
}

func TestNewScheduleValidation(t *testing.T) {
	start := time.Now()

	_, err := NewSchedule(1000, 0, 0, start)
	assert.Error(t, err)

	_, err = NewSchedule(0, 0, 3, start)
	assert.Error(t, err)

	_, err = NewSchedule(1000, 1000, 3, start)
	assert.Error(t, err)
}
