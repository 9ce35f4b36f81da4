package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/kbhan/dividend"
)

// MonthlyMarkdown renders the monthly dividend series of one year.
func MonthlyMarkdown(s *dividend.MonthlySeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%d년 월별 %s", s.Year, basisLabel(s.Basis)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"월", basisLabel(s.Basis)},
	}
	for _, m := range s.Months {
		table.Rows = append(table.Rows, []string{fmt.Sprintf("%d월", m.Month), cell(m.Amount)})
	}
	table.Rows = append(table.Rows, []string{md.Bold(dividend.TotalLabel), md.Bold(won(s.Total))})
	doc.Table(table)

	return doc.String()
}
