package dividend

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Labels of the synthetic total rows, in the export's own language so the
// presentation layer can pass them through unchanged.
const (
	TotalLabel      = "총합"
	GrandTotalLabel = "전체 총합"
)

// NewStockCalendar pivots one year of the ledger into a holding × month
// matrix. If account is AllAccounts no account filter is applied; otherwise
// only that account's records are counted.
func NewStockCalendar(l *Ledger, year int, basis AmountBasis, account string) *Calendar {
	return pivotCalendar(l, year, basis, account, TotalLabel, func(r DividendRecord) string {
		return r.Holding
	})
}

// NewAccountCalendar pivots one year of the ledger into an account × month
// matrix. It is explicitly empty when nothing matches.
func NewAccountCalendar(l *Ledger, year int, basis AmountBasis, account string) *Calendar {
	return pivotCalendar(l, year, basis, account, GrandTotalLabel, func(r DividendRecord) string {
		return r.Account
	})
}

// pivotCalendar groups matching records by a label and by month.
func pivotCalendar(l *Ledger, year int, basis AmountBasis, account, grandLabel string, label func(DividendRecord) string) *Calendar {
	cells := make(map[string]*[12]decimal.Decimal)
	for r := range l.Records() {
		if r.Year != year || r.Month < 1 {
			continue
		}
		if account != AllAccounts && r.Account != account {
			continue
		}
		key := label(r)
		row, ok := cells[key]
		if !ok {
			row = new([12]decimal.Decimal)
			cells[key] = row
		}
		row[r.Month-1] = row[r.Month-1].Add(basis.amount(r))
	}

	c := &Calendar{
		Year:    year,
		Basis:   basis,
		Account: account,
		Grand:   CalendarRow{Label: grandLabel},
	}
	for _, key := range slices.Sorted(maps.Keys(cells)) {
		row := CalendarRow{Label: key}
		for i, sum := range cells[key] {
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
