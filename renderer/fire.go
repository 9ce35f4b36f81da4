package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/kbhan/dividend"
)

// FireMarkdown renders the FIRE goal progress of one year.
func FireMarkdown(f *dividend.FireReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%d년 FIRE 목표 달성 현황", f.Year))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"항목", "금액"},
		Rows: [][]string{
			{"목표 월 생활비", won(f.MonthlyGoal)},
			{"연간 목표 금액", won(f.AnnualGoal)},
			{"올해 세후 배당금", won(f.YearToDate)},
		},
	})

	doc.PlainText(fmt.Sprintf("%s %s", progressBar(f.Progress, 20), md.Bold(f.Progress.String())))

	switch {
	case f.Achieved:
		doc.PlainText("올해 FIRE 목표를 달성했습니다!")
	case f.YearToDate > 0:
		doc.PlainText(fmt.Sprintf("목표까지 %s 남았습니다.", won(f.Shortfall)))
	default:
		doc.PlainText("아직 올해 배당금이 없습니다.")
	}

	return doc.String()
}

// progressBar draws a fixed-width text gauge, capped at 100%.
func progressBar(p dividend.Percent, width int) string {
	filled := int(float64(p) / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
