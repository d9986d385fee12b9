package analytics

import "math"

// DebtSchedule is the amortization summary of a reducing-balance loan.
type DebtSchedule struct {
	EMI           float64 `json:"emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayable  float64 `json:"total_payable"`
}

// DebtProgress is the repayment position of a debt.
type DebtProgress struct {
	RemainingAmount float64 `json:"remaining_amount"`
	PercentPaid     float64 `json:"percent_paid"`
}

// ComputeEMI calculates the equal monthly installment for a loan using the
// standard reducing-balance formula. A zero interest rate degrades to a
// straight principal division; a non-positive tenure yields a zero schedule
// rather than dividing by zero.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) DebtSchedule {
	if tenureMonths <= 0 || principal <= 0 {
		return DebtSchedule{}
	}

	monthlyRate := annualRatePercent / 12 / 100
	var emi float64
	if monthlyRate > 0 {
		growth := math.Pow(1+monthlyRate, float64(tenureMonths))
		emi = principal * monthlyRate * growth / (growth - 1)
	} else {
		emi = principal / float64(tenureMonths)
	}

	emi = round2(emi)
	totalPayable := round2(emi * float64(tenureMonths))
	totalInterest := round2(totalPayable - principal)
	if totalInterest < 0 {
		// rounding can shave a fraction of a paisa below zero
		totalInterest = 0
	}

	return DebtSchedule{
		EMI:           emi,
		TotalInterest: totalInterest,
		TotalPayable:  totalPayable,
	}
}

// ProgressOfDebt derives the remaining balance (clamped at zero) and the
// percent paid (capped at 100) from the total payable and payments so far.
func ProgressOfDebt(totalPayable, amountPaid float64) DebtProgress {
	remaining := totalPayable - amountPaid
	if remaining < 0 {
		remaining = 0
	}

	var percent float64
	if totalPayable > 0 {
		percent = amountPaid / totalPayable * 100
		if percent > 100 {
			percent = 100
		}
	}

	return DebtProgress{RemainingAmount: remaining, PercentPaid: percent}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
