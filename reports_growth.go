package dividend

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// GrowthEntry is one year of the year-over-year dividend growth series.
type GrowthEntry struct {
	Year        int
	Amount      int64
	PriorAmount int64
	// Growth is the year-over-year change in percent. It is nil, not zero,
	// when there is no prior year or the prior year's amount is zero.
	Growth *Percent
}

// GrowthHistory is the year-over-year dividend growth series, ascending by
// year.
type GrowthHistory struct {
	Basis   AmountBasis
	Entries []GrowthEntry
}

// Sufficient reports whether the history spans enough years (at least two)
// for a growth rate to be meaningful.
func (g *GrowthHistory) Sufficient() bool { return len(g.Entries) >= 2 }

// NewAnnualGrowth computes yearly dividend totals and their year-over-year
// growth rates. Growth is computed on exact yearly sums before any rounding,
// so presented amounts and growth never diverge by compounding error.
func NewAnnualGrowth(l *Ledger, basis AmountBasis) *GrowthHistory {
	sums := make(map[int]decimal.Decimal)
	for r := range l.Records() {
		if r.Year == 0 {
			continue
		}
		sums[r.Year] = sums[r.Year].Add(basis.amount(r))
	}

	g := &GrowthHistory{Basis: basis}
	var prior decimal.Decimal
	for i, year := range slices.Sorted(maps.Keys(sums)) {
		sum := sums[year]
		entry := GrowthEntry{Year: year, Amount: round(sum)}
		if i > 0 {
			entry.PriorAmount = round(prior)
			if !prior.IsZero() {
				growth := Percent(sum.Sub(prior).Div(prior).InexactFloat64() * 100)
				entry.Growth = &growth
			}
		}
		g.Entries = append(g.Entries, entry)
		prior = sum
	}
	return g
}
