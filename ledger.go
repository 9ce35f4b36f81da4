package dividend

import (
	"iter"
	"maps"
	"slices"
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// LocalCurrency is the currency assumed when a row declares none.
const LocalCurrency = money.KRW

// DividendRecord is one normalized dividend deposit.
//
// Invariants: Posttax is never negative, Currency is never empty, and Year
// and Month are both zero exactly when Date is the invalid-date sentinel.
type DividendRecord struct {
	Date     Date
	Year     int
	Month    int // 1..12, 0 when Date is invalid
	Holding  string
	Account  string
	Owner    string
	Currency string
	Pretax   decimal.Decimal
	Tax      decimal.Decimal
	Posttax  decimal.Decimal
}

// Ledger is the full normalized set of dividend records built from one
// export. It is immutable once built: a new file load builds a new Ledger.
type Ledger struct {
	records []DividendRecord
}

// NewLedger classifies and normalizes raw transactions into a ledger.
//
// Rows whose transaction type is not a dividend deposit category never enter
// the ledger. Row-level data issues (unparseable dates, missing numeric or
// currency fields) degrade via documented defaults and are never errors.
// Normalizing the same rows twice yields identical ledgers.
func NewLedger(rows []RawTransaction) *Ledger {
	records := make([]DividendRecord, 0, len(rows))
	for _, row := range rows {
		if !IsDividendType(row.Type) {
			continue
		}
		records = append(records, normalize(row))
	}
	return &Ledger{records: records}
}

// normalize converts one qualifying raw row into a DividendRecord.
//
// Defaults: tax total 0, unit price 1, currency KRW. The amount rule is the
// export's: USD rows carry their amounts (and tax) in the foreign currency and
// the unit price is the exchange rate; every other row is already in the
// local currency.
func normalize(row RawTransaction) DividendRecord {
	tax := parseAmount(row.TaxTotal, decimal.Zero)
	unitPrice := parseAmount(row.UnitPrice, decimal.NewFromInt(1))

	currency := strings.ToUpper(strings.TrimSpace(row.Currency))
	if currency == "" || money.GetCurrency(currency) == nil {
		currency = LocalCurrency
	}

	var pretax, posttax decimal.Decimal
	if currency == money.USD {
		foreign := parseAmount(row.ForeignAmount, decimal.Zero)
		pretax = foreign.Mul(unitPrice)
		posttax = foreign.Sub(tax).Mul(unitPrice)
	} else {
		domestic := parseAmount(row.DomesticAmount, decimal.Zero)
		pretax = domestic
		posttax = domestic.Sub(tax)
	}
	if posttax.IsNegative() {
		posttax = decimal.Zero
	}

	rec := DividendRecord{
		Date:     coerceDate(row.Date),
		Holding:  row.Holding,
		Account:  row.Account,
		Owner:    row.Owner,
		Currency: currency,
		Pretax:   pretax,
		Tax:      tax,
		Posttax:  posttax,
	}
	// The sheet year tags the row during load; the year and month used by
	// reports come from the transaction date itself.
	if !rec.Date.IsZero() {
		rec.Year = rec.Date.Year()
		rec.Month = int(rec.Date.Month())
	}
	return rec
}

// parseAmount reads a numeric export cell, tolerating thousands separators.
// Empty or unreadable cells take the default.
func parseAmount(s string, def decimal.Decimal) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return d
}

// Records iterates over all records in load order.
func (l *Ledger) Records() iter.Seq[DividendRecord] {
	return slices.Values(l.records)
}

// Len returns the number of dividend records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Years returns the distinct years present in the ledger, ascending. Records
// with an invalid date have no year and are not represented.
func (l *Ledger) Years() []int {
	set := make(map[int]struct{})
	for _, r := range l.records {
		if r.Year != 0 {
			set[r.Year] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// MaxYear returns the most recent year present in the ledger, or 0 if the
// ledger holds no dated records.
func (l *Ledger) MaxYear() int {
	years := l.Years()
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

// Accounts returns the distinct account identifiers, sorted.
func (l *Ledger) Accounts() []string {
	set := make(map[string]struct{})
	for _, r := range l.records {
		set[r.Account] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Owners returns the distinct owner identifiers, sorted.
func (l *Ledger) Owners() []string {
	set := make(map[string]struct{})
	for _, r := range l.records {
		set[r.Owner] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// AccountsOf returns the distinct accounts belonging to an owner, sorted.
func (l *Ledger) AccountsOf(owner string) []string {
	set := make(map[string]struct{})
	for _, r := range l.records {
		if r.Owner == owner {
			set[r.Account] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}
