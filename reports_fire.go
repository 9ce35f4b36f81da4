package dividend

import "github.com/shopspring/decimal"

// FireReport measures one year's post-tax dividend income against a fixed
// FIRE (Financial Independence, Retire Early) goal: a monthly living-cost
// target multiplied by 12 as the annual baseline.
type FireReport struct {
	Year        int
	MonthlyGoal int64
	AnnualGoal  int64
	YearToDate  int64 // post-tax dividends received so far this year
	Progress    Percent
	Achieved    bool
	Shortfall   int64 // remaining amount to the annual goal, floored at 0
}

// NewFireProgress computes FIRE progress for a year. A zero year selects the
// most recent year present in the ledger. The post-tax basis is fixed: living
// off dividends means living off what actually lands in the account.
func NewFireProgress(l *Ledger, monthlyGoal int64, year int) *FireReport {
	if year == 0 {
		year = l.MaxYear()
	}

	var ytd decimal.Decimal
	for r := range l.Records() {
		if r.Year == year {
			ytd = ytd.Add(r.Posttax)
		}
	}

	f := &FireReport{
		Year:        year,
		MonthlyGoal: monthlyGoal,
		AnnualGoal:  monthlyGoal * 12,
		YearToDate:  round(ytd),
	}
	if f.AnnualGoal > 0 {
		f.Progress = Percent(ytd.InexactFloat64() / float64(f.AnnualGoal) * 100)
	}
	f.Achieved = f.YearToDate >= f.AnnualGoal
	if shortfall := f.AnnualGoal - f.YearToDate; shortfall > 0 {
		f.Shortfall = shortfall
	}
	return f
}
