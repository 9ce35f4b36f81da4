package dividend

import "github.com/shopspring/decimal"

// MonthlySeries is the dividend income of one year, bucketed by month.
// It always holds exactly 12 entries, January through December, zero-filled
// for months without income.
type MonthlySeries struct {
	Year   int
	Basis  AmountBasis
	Months []MonthlyAmount
	Total  int64 // grand total for the year, in whole currency units
}

// NewMonthlySeries computes the monthly dividend series for a year.
// Records with an invalid date carry no month and are excluded.
func NewMonthlySeries(l *Ledger, year int, basis AmountBasis) *MonthlySeries {
	var sums [12]decimal.Decimal
	for r := range l.Records() {
		if r.Year != year || r.Month < 1 {
			continue
		}
		sums[r.Month-1] = sums[r.Month-1].Add(basis.amount(r))
	}

	s := &MonthlySeries{
		Year:   year,
		Basis:  basis,
		Months: make([]MonthlyAmount, 12),
	}
	for i, sum := range sums {
		amount := round(sum)
		s.Months[i] = MonthlyAmount{Month: i + 1, Amount: amount}
		s.Total += amount
	}
	return s
}
