package installment

import (
	"fmt"
	"math"
	"time"
)

// NewSchedule splits totalAmount minus downPayment into n equal monthly
// installments starting one month after startDate. Rounding happens per
// installment at two decimals; the last installment absorbs the rounding
// remainder so the schedule sums back to the financed amount.
func NewSchedule(totalAmount, downPayment float64, n int, startDate time.Time) (Plan, error) {
	if n < 1 {
		return Plan{}, fmt.Errorf("number of installments must be at least 1, got %d", n)
	}
	if totalAmount <= 0 {
		return Plan{}, fmt.Errorf("total amount must be positive, got %.2f", totalAmount)
	}
	if downPayment < 0 || downPayment >= totalAmount {
		return Plan{}, fmt.Errorf("down payment %.2f out of range for total %.2f", downPayment, totalAmount)
	}

	financed := totalAmount - downPayment
	each := math.Round(financed/float64(n)*100) / 100

	plan := Plan{
		Enabled:         true,
		TotalAmount:     totalAmount,
		NumInstallments: n,
		DownPayment:     downPayment,
		Installments:    make([]Installment, n),
	}

	for i := 0; i < n; i++ {
		amount := each
		if i == n-1 {
			amount = math.Round((financed-each*float64(n-1))*100) / 100
		}
		plan.Installments[i] = Installment{
			Number:  i + 1,
			Amount:  amount,
			DueDate: startDate.AddDate(0, i+1, 0),
		}
	}

	return plan, nil
}
