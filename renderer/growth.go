package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/kbhan/dividend"
)

// GrowthMarkdown renders the year-over-year dividend growth series.
func GrowthMarkdown(g *dividend.GrowthHistory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("연도별 배당 성장률")
	if !g.Sufficient() {
		doc.PlainText("배당 성장률을 계산하려면 최소 2년의 연도별 데이터가 필요합니다.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"연도", basisLabel(g.Basis), "전년도", "성장률"},
	}
	for _, e := range g.Entries {
		growth := "-"
		if e.Growth != nil {
			growth = e.Growth.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.Year),
			won(e.Amount),
			cell(e.PriorAmount),
			growth,
		})
	}
	doc.Table(table)

	return doc.String()
}
