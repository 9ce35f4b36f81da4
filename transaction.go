package dividend

// TransactionType is the free-text category a brokerage assigns to a row of
// the export ("거래종류" column).
type TransactionType string

// The dividend deposit categories, exactly as they appear in the export.
// Membership in this list is the single gate for a row to enter the ledger;
// it is configuration, not logic.
const (
	TxForeignDividend      TransactionType = "배당금외화입금"
	TxCashDividend         TransactionType = "배당금입금"
	TxETFDistribution      TransactionType = "ETF분배금입금"
	TxCashDividendAlt      TransactionType = "현금배당"
	TxETFClassDistribution TransactionType = "ETF/상장클래스 분배금입금"
)

var dividendTypes = map[TransactionType]bool{
	TxForeignDividend:      true,
	TxCashDividend:         true,
	TxETFDistribution:      true,
	TxCashDividendAlt:      true,
	TxETFClassDistribution: true,
}

// IsDividendType returns true if t is one of the dividend deposit categories.
func IsDividendType(t TransactionType) bool { return dividendTypes[t] }

// RawTransaction is one row of the export as loaded, before normalization.
//
// Numeric and date cells are kept as raw strings on purpose: whether an empty
// cell means "zero" or "use the default" is decided during normalization, not
// during load.
type RawTransaction struct {
	Date           string // "거래일자" cell, parsed during normalization
	Type           TransactionType
	Holding        string // security or fund name
	Account        string
	Owner          string
	DomesticAmount string // transaction amount in the local currency
	ForeignAmount  string // transaction amount in the foreign currency
	TaxTotal       string // withholding tax, in the transaction's currency
	UnitPrice      string // exchange rate applied to foreign amounts
	Currency       string // currency code, may be empty
	SheetYear      int    // year declared by the sheet the row came from
}
