package dividend

import "testing"

func TestNewMonthlySeries(t *testing.T) {
	rows := []RawTransaction{
		rawDividend(func(tx *RawTransaction) { tx.Date = "2025-03-14"; tx.DomesticAmount = "50000"; tx.TaxTotal = "0" }),
		rawDividend(func(tx *RawTransaction) { tx.Date = "2025-03-28"; tx.DomesticAmount = "10000"; tx.TaxTotal = "0" }),
		rawDividend(func(tx *RawTransaction) { tx.Date = "2025-11-05"; tx.DomesticAmount = "20000"; tx.TaxTotal = "0" }),
		rawDividend(func(tx *RawTransaction) { tx.Date = "2024-03-14"; tx.DomesticAmount = "99999"; tx.TaxTotal = "0" }),
		rawDividend(func(tx *RawTransaction) { tx.Date = "garbage" }), // no month, excluded
	}
	s := NewMonthlySeries(NewLedger(rows), 2025, Pretax)

	if len(s.Months) != 12 {
		t.Fatalf("got %d entries, want exactly 12", len(s.Months))
	}
	for i, m := range s.Months {
		if m.Month != i+1 {
			t.Fatalf("entry %d has Month %d, want %d", i, m.Month, i+1)
		}
	}
	if got := s.Months[2].Amount; got != 60000 {
		t.Errorf("March = %d, want 60000", got)
	}
	if got := s.Months[10].Amount; got != 20000 {
		t.Errorf("November = %d, want 20000", got)
	}
	if got := s.Months[0].Amount; got != 0 {
		t.Errorf("January = %d, want zero-filled 0", got)
	}
	if s.Total != 80000 {
		t.Errorf("Total = %d, want 80000", s.Total)
	}
}

func TestNewMonthlySeries_NoMatchingYear(t *testing.T) {
	s := NewMonthlySeries(NewLedger([]RawTransaction{rawDividend(nil)}), 1999, Posttax)
	if len(s.Months) != 12 {
		t.Fatalf("got %d entries, want 12 even with no data", len(s.Months))
	}
	if s.Total != 0 {
		t.Errorf("Total = %d, want 0", s.Total)
	}
}

func TestNewMonthlySeries_Basis(t *testing.T) {
	l := NewLedger([]RawTransaction{usdDividend(nil)}) // pretax 130000, posttax 110500
	if got := NewMonthlySeries(l, 2025, Pretax).Total; got != 130000 {
		t.Errorf("pretax Total = %d, want 130000", got)
	}
	if got := NewMonthlySeries(l, 2025, Posttax).Total; got != 110500 {
		t.Errorf("posttax Total = %d, want 110500", got)
	}
}
