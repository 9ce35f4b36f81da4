package dividend

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountBasis selects between the pre-tax and post-tax dividend amount for a
// report.
type AmountBasis int

const (
	// Posttax reports the dividend amount after withholding tax.
	Posttax AmountBasis = iota
	// Pretax reports the dividend amount before withholding tax.
	Pretax
)

func (b AmountBasis) String() string {
	switch b {
	case Posttax:
		return "posttax"
	case Pretax:
		return "pretax"
	default:
		return "unknown"
	}
}

// ParseAmountBasis parses a string into an AmountBasis.
func ParseAmountBasis(s string) (AmountBasis, error) {
	switch s {
	case "posttax":
		return Posttax, nil
	case "pretax":
		return Pretax, nil
	default:
		return 0, fmt.Errorf("unknown amount basis: %q", s)
	}
}

// amount returns the record field this basis selects.
func (b AmountBasis) amount(r DividendRecord) decimal.Decimal {
	if b == Pretax {
		return r.Pretax
	}
	return r.Posttax
}

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", p)
}

// AllAccounts is the sentinel that disables account filtering in calendar
// reports.
const AllAccounts = ""

// MonthlyAmount is one month's aggregated amount, rounded to the nearest
// whole currency unit.
type MonthlyAmount struct {
	Month  int
	Amount int64
}

// CalendarRow is one row of a calendar matrix: twelve month cells and their
// row-wise sum, all in whole currency units.
type CalendarRow struct {
	Label  string
	Months [12]int64
	Total  int64
}

// Calendar is a label × month matrix of aggregated amounts for one year,
// with a trailing total row. Rows are sorted by label.
type Calendar struct {
	Year    int
	Basis   AmountBasis
	Account string // AllAccounts when no account filter was applied
	Rows    []CalendarRow
	Grand   CalendarRow // column-wise sum of Rows
}

// IsEmpty reports whether no record matched the calendar's selection.
// An empty calendar is a valid result, not a failure; callers must branch on
// it rather than expect a zero matrix.
func (c *Calendar) IsEmpty() bool { return len(c.Rows) == 0 }

// round converts an exact aggregate into the whole currency units presented
// at report boundaries. Amounts are never rounded mid-computation.
func round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
