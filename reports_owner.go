package dividend

import (
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// NewOwnerSummary pivots one year of an owner's selected accounts into an
// account × month matrix. The accounts list is the caller's selection among
// AccountsOf(owner); an empty selection yields an empty calendar, which is a
// valid result rather than an error.
func NewOwnerSummary(l *Ledger, owner string, accounts []string, year int, basis AmountBasis) *Calendar {
	if len(accounts) == 0 {
		return &Calendar{Year: year, Basis: basis, Grand: CalendarRow{Label: GrandTotalLabel}}
	}

	cells := make(map[string]*[12]decimal.Decimal)
	for r := range l.Records() {
		if r.Owner != owner || r.Year != year || r.Month < 1 {
			continue
		}
		if !slices.Contains(accounts, r.Account) {
			continue
		}
		row, ok := cells[r.Account]
		if !ok {
			row = new([12]decimal.Decimal)
			cells[r.Account] = row
		}
		row[r.Month-1] = row[r.Month-1].Add(basis.amount(r))
	}

	c := &Calendar{Year: year, Basis: basis, Grand: CalendarRow{Label: GrandTotalLabel}}
	for _, account := range slices.Sorted(maps.Keys(cells)) {
		row := CalendarRow{Label: account}
		for i, sum := range cells[account] {
			amount := round(sum)
			row.Months[i] = amount
			row.Total += amount
			c.Grand.Months[i] += amount
		}
		c.Grand.Total += row.Total
		c.Rows = append(c.Rows, row)
	}
	return c
}

// DetailRow is one transaction of the monthly drill-down, amounts in whole
// currency units. The synthetic total row leaves the text columns blank.
type DetailRow struct {
	Date     Date
	Account  string
	Holding  string
	Currency string
	Pretax   int64
	Tax      int64
	Posttax  int64
}

// MonthlyDetails lists the individual dividend deposits of one owner's
// selected accounts for one month, most recent first.
type MonthlyDetails struct {
	Owner string
	Year  int
	Month int
	Basis AmountBasis // echoed so the presentation layer can emphasize a column
	Rows  []DetailRow
	Total DetailRow // summed numeric columns, blank text columns, zero Date
}

// IsEmpty reports whether no transaction matched the selection.
func (d *MonthlyDetails) IsEmpty() bool { return len(d.Rows) == 0 }

// NewMonthlyDetails computes the transaction-level drill-down for an owner,
// a selection of accounts, and a single month.
func NewMonthlyDetails(l *Ledger, owner string, accounts []string, year, month int, basis AmountBasis) *MonthlyDetails {
	d := &MonthlyDetails{Owner: owner, Year: year, Month: month, Basis: basis}
	if len(accounts) == 0 {
		return d
	}

	for r := range l.Records() {
		if r.Owner != owner || r.Year != year || r.Month != month {
			continue
		}
		if !slices.Contains(accounts, r.Account) {
			continue
		}
		row := DetailRow{
			Date:     r.Date,
			Account:  r.Account,
			Holding:  r.Holding,
			Currency: r.Currency,
			Pretax:   round(r.Pretax),
			Tax:      round(r.Tax),
			Posttax:  round(r.Posttax),
		}
		d.Rows = append(d.Rows, row)
		d.Total.Pretax += row.Pretax
		d.Total.Tax += row.Tax
		d.Total.Posttax += row.Posttax
	}

	sort.SliceStable(d.Rows, func(i, j int) bool {
		return d.Rows[i].Date.After(d.Rows[j].Date)
	})
	return d
}
