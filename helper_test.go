package dividend

// Helpers shared by the package tests.

// rawDividend returns a qualifying raw row with sensible defaults that
// individual tests override.
func rawDividend(over func(*RawTransaction)) RawTransaction {
	tx := RawTransaction{
		Date:           "2025-03-14",
		Type:           TxCashDividend,
		Holding:        "맥쿼리인프라",
		Account:        "ISA",
		Owner:          "한결",
		DomesticAmount: "50000",
		TaxTotal:       "7700",
		UnitPrice:      "1",
		Currency:       "KRW",
		SheetYear:      2025,
	}
	if over != nil {
		over(&tx)
	}
	return tx
}

// usdDividend returns a qualifying USD raw row.
func usdDividend(over func(*RawTransaction)) RawTransaction {
	tx := RawTransaction{
		Date:          "2025-06-20",
		Type:          TxForeignDividend,
		Holding:       "SCHD",
		Account:       "연금저축",
		Owner:         "한결",
		ForeignAmount: "100",
		TaxTotal:      "15",
		UnitPrice:     "1300",
		Currency:      "USD",
		SheetYear:     2025,
	}
	if over != nil {
		over(&tx)
	}
	return tx
}
