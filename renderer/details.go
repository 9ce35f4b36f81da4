package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/kbhan/dividend"
)

// DetailsMarkdown renders the transaction-level drill-down of one month.
func DetailsMarkdown(d *dividend.MonthlyDetails) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s · %d년 %d월 배당 상세 내역", d.Owner, d.Year, d.Month))
	if d.IsEmpty() {
		doc.PlainText("해당하는 배당 내역이 없습니다.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"거래일자", "계좌", "종목명", "통화코드", "배당금(세전)", "제세금합", "배당금(세후)"},
	}
	for _, row := range d.Rows {
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			row.Account,
			row.Holding,
			row.Currency,
			won(row.Pretax),
			won(row.Tax),
			won(row.Posttax),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold(dividend.TotalLabel), "", "", "",
		md.Bold(won(d.Total.Pretax)),
		md.Bold(won(d.Total.Tax)),
		md.Bold(won(d.Total.Posttax)),
	})
	doc.Table(table)

	return doc.String()
}
