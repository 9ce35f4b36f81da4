package dividend

import "testing"

func growthLedger(amountByYear map[int]string) *Ledger {
	var rows []RawTransaction
	for year, amount := range amountByYear {
		y := year
		a := amount
		rows = append(rows, rawDividend(func(tx *RawTransaction) {
			tx.Date = NewDate(y, 6, 15).String()
			tx.DomesticAmount = a
			tx.TaxTotal = "0"
		}))
	}
	return NewLedger(rows)
}

func TestNewAnnualGrowth(t *testing.T) {
	g := NewAnnualGrowth(growthLedger(map[int]string{
		2023: "1000000",
		2024: "1500000",
	}), Posttax)

	if !g.Sufficient() {
		t.Fatalf("two years of data should be sufficient")
	}
	if len(g.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(g.Entries))
	}

	first, second := g.Entries[0], g.Entries[1]
	if first.Year != 2023 || first.Amount != 1000000 {
		t.Errorf("first entry = %+v, want 2023/1000000", first)
	}
	if first.Growth != nil {
		t.Errorf("first year has no prior, Growth must be nil, got %v", *first.Growth)
	}
	if second.Year != 2024 || second.Amount != 1500000 || second.PriorAmount != 1000000 {
		t.Errorf("second entry = %+v", second)
	}
	if second.Growth == nil || !second.Growth.Equal(50) {
		t.Errorf("Growth = %v, want 50.00%%", second.Growth)
	}
}

func TestNewAnnualGrowth_ZeroPriorIsUndefined(t *testing.T) {
	g := NewAnnualGrowth(growthLedger(map[int]string{
		2023: "0",
		2024: "1500000",
	}), Posttax)

	second := g.Entries[1]
	if second.PriorAmount != 0 {
		t.Fatalf("PriorAmount = %d, want 0", second.PriorAmount)
	}
	if second.Growth != nil {
		t.Errorf("growth over a zero prior year must be undefined, got %v", *second.Growth)
	}
}

func TestNewAnnualGrowth_SingleYearInsufficient(t *testing.T) {
	g := NewAnnualGrowth(growthLedger(map[int]string{2024: "1500000"}), Posttax)
	if g.Sufficient() {
		t.Errorf("a single year is not enough to compute growth")
	}
	if len(g.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(g.Entries))
	}
}

func TestNewFireProgress(t *testing.T) {
	// 30,000,000 received against a 4,000,000/month goal
	l := growthLedger(map[int]string{2025: "30000000"})
	f := NewFireProgress(l, 4_000_000, 2025)

	if f.AnnualGoal != 48_000_000 {
		t.Errorf("AnnualGoal = %d, want 48000000", f.AnnualGoal)
	}
	if f.YearToDate != 30_000_000 {
		t.Errorf("YearToDate = %d, want 30000000", f.YearToDate)
	}
	if !f.Progress.Equal(62.5) {
		t.Errorf("Progress = %s, want 62.50%%", f.Progress)
	}
	if f.Achieved {
		t.Errorf("goal is not achieved at 62.5%%")
	}
	if f.Shortfall != 18_000_000 {
		t.Errorf("Shortfall = %d, want 18000000", f.Shortfall)
	}
}

func TestNewFireProgress_Achieved(t *testing.T) {
	l := growthLedger(map[int]string{2025: "50000000"})
	f := NewFireProgress(l, 4_000_000, 2025)
	if !f.Achieved || f.Shortfall != 0 {
		t.Errorf("Achieved/Shortfall = %v/%d, want true/0", f.Achieved, f.Shortfall)
	}
}

func TestNewFireProgress_ZeroGoal(t *testing.T) {
	l := growthLedger(map[int]string{2025: "1000"})
	f := NewFireProgress(l, 0, 2025)
	if f.Progress != 0 {
		t.Errorf("Progress = %s, want 0 when the goal is 0", f.Progress)
	}
}

func TestNewFireProgress_DefaultsToMaxYear(t *testing.T) {
	l := growthLedger(map[int]string{2023: "100", 2025: "200"})
	f := NewFireProgress(l, 1, 0)
	if f.Year != 2025 {
		t.Errorf("Year = %d, want the ledger's max year 2025", f.Year)
	}
	if f.YearToDate != 200 {
		t.Errorf("YearToDate = %d, want 200", f.YearToDate)
	}
}
