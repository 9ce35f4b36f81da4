// Package renderer turns dividend report structures into markdown. It is the
// presentation layer: all amount formatting and labeling happens here, never
// in the core package.
package renderer

import (
	"fmt"

	money "github.com/Rhymond/go-money"

	"github.com/kbhan/dividend"
)

// won formats a whole-unit KRW amount with thousands separators.
func won(v int64) string {
	return money.New(v, money.KRW).Display()
}

// cell formats a calendar cell, keeping zero cells blank so the month grid
// stays readable.
func cell(v int64) string {
	if v == 0 {
		return ""
	}
	return won(v)
}

// basisLabel is the Korean display label of an amount basis, as it appeared
// in the export-era reports.
func basisLabel(b dividend.AmountBasis) string {
	if b == dividend.Pretax {
		return "배당금(세전)"
	}
	return "배당금(세후)"
}

// monthLabels returns the twelve month column labels, "1월" through "12월".
func monthLabels() []string {
	labels := make([]string, 12)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d월", i+1)
	}
	return labels
}
