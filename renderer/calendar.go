package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/kbhan/dividend"
)

// StockCalendarMarkdown renders a holding × month dividend calendar.
func StockCalendarMarkdown(c *dividend.Calendar) string {
	return calendarMarkdown(c, fmt.Sprintf("%d년 %s 종목별 배당 달력", c.Year, accountLabel(c.Account)), "종목명")
}

// AccountCalendarMarkdown renders an account × month dividend calendar.
func AccountCalendarMarkdown(c *dividend.Calendar) string {
	return calendarMarkdown(c, fmt.Sprintf("%d년 %s 계좌별 배당 달력", c.Year, accountLabel(c.Account)), "계좌")
}

// OwnerSummaryMarkdown renders the per-owner account × month summary.
func OwnerSummaryMarkdown(owner string, c *dividend.Calendar) string {
	title := fmt.Sprintf("%s · %d년 계좌별 월별 %s", owner, c.Year, basisLabel(c.Basis))
	return calendarMarkdown(c, title, "계좌")
}

func accountLabel(account string) string {
	if account == dividend.AllAccounts {
		return "전체 계좌"
	}
	return account
}

func calendarMarkdown(c *dividend.Calendar, title, labelHeader string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if c.IsEmpty() {
		doc.PlainText("해당하는 배당 내역이 없습니다.")
		return doc.String()
	}

	alignment := make([]md.TableAlignment, 0, 14)
	alignment = append(alignment, md.AlignLeft)
	for i := 0; i < 13; i++ {
		alignment = append(alignment, md.AlignRight)
	}

	header := append([]string{labelHeader}, monthLabels()...)
	header = append(header, dividend.TotalLabel)

	table := md.TableSet{Alignment: alignment, Header: header}
	for _, row := range c.Rows {
		table.Rows = append(table.Rows, calendarRowCells(row, false))
	}
	table.Rows = append(table.Rows, calendarRowCells(c.Grand, true))
	doc.Table(table)

	return doc.String()
}

func calendarRowCells(row dividend.CalendarRow, bold bool) []string {
	cells := make([]string, 0, 14)
	format := cell
	if bold {
		format = func(v int64) string {
			if v == 0 {
				return ""
			}
			return md.Bold(won(v))
		}
	}
	label := row.Label
	if bold {
		label = md.Bold(label)
	}
	cells = append(cells, label)
	for _, v := range row.Months {
		cells = append(cells, format(v))
	}
	return append(cells, format(row.Total))
}
