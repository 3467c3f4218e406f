// Package pricing derives the platform fee and the employer's total from a worker payout.
package pricing

import "fmt"

// FeeRate is the platform's share on top of the worker payout.
const FeeRate = 0.2

// MaxPayoutCents bounds accepted payouts so totals stay exact and far from int64 overflow.
const MaxPayoutCents int64 = 900719925474099

// FeeCents is round(amount * FeeRate), half away from zero, in integer arithmetic.
func FeeCents(payoutCents int64) int64 {
	if payoutCents < 0 {
		return -feeCents(uint64(-(payoutCents + 1)) + 1)
	}
	return feeCents(uint64(payoutCents))
}

// feeCents is round(p/5). A remainder of 3 or 4 fifths rounds up; exact halves cannot occur.
func feeCents(p uint64) int64 {
	fee := p / 5
	if p%5 >= 3 {
		fee++
	}
	return int64(fee)
}

// EmployerTotalCents is what the employer pays: payout plus fee.
// Callers keep payouts within ±MaxPayoutCents.
func EmployerTotalCents(payoutCents int64) int64 {
	return payoutCents + FeeCents(payoutCents)
}

// FormatCents renders cents as a two-decimal euro amount, e.g. 1250 -> "12.50 €".
func FormatCents(cents int64) string {
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s%d.%02d €", sign, abs/100, abs%100)
}
