package dividend

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// The required columns of the export, by their localized header names. These
// names are the compatibility surface of the file format.
const (
	colDate      = "거래일자"
	colType      = "거래종류"
	colHolding   = "종목명"
	colDomestic  = "거래금액"
	colForeign   = "외화거래금액"
	colTax       = "제세금합"
	colUnitPrice = "단가"
	colCurrency  = "통화코드"
	colAccount   = "계좌"
	colOwner     = "소유주"
)

var requiredColumns = []string{
	colDate, colType, colHolding, colDomestic, colForeign,
	colTax, colUnitPrice, colCurrency, colAccount, colOwner,
}

// Workbook is the minimal surface the loader needs from a spreadsheet file: a
// list of sheet names and a per-sheet tabular reader. Tests supply in-memory
// implementations.
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) ([][]string, error)
}

// XLSXWorkbook is a Workbook backed by an xlsx file.
type XLSXWorkbook struct {
	f *excelize.File
}

// OpenWorkbook opens the xlsx file at path.
func OpenWorkbook(path string) (*XLSXWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %q: %w", path, err)
	}
	return &XLSXWorkbook{f: f}, nil
}

// OpenWorkbookReader reads an xlsx workbook from r (e.g. an uploaded file
// held in memory).
func OpenWorkbookReader(r io.Reader) (*XLSXWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not read workbook: %w", err)
	}
	return &XLSXWorkbook{f: f}, nil
}

// SheetNames returns the workbook's sheet names in workbook order.
func (w *XLSXWorkbook) SheetNames() []string { return w.f.GetSheetList() }

// Rows returns all cells of a sheet as formatted strings.
func (w *XLSXWorkbook) Rows(sheet string) ([][]string, error) { return w.f.GetRows(sheet) }

// Close releases the underlying file.
func (w *XLSXWorkbook) Close() error { return w.f.Close() }

// ReadTransactions unions every sheet of the workbook into one flat list of
// raw transactions, stamping each row with the year its sheet declares.
//
// Sheet order and row order within a sheet are preserved. No deduplication is
// performed. Every sheet name must parse as a 4-digit year, and every sheet
// must carry the required columns; both failures abort the whole load.
func ReadTransactions(wb Workbook) ([]RawTransaction, error) {
	var all []RawTransaction
	for _, sheet := range wb.SheetNames() {
		year, err := parseSheetYear(sheet)
		if err != nil {
			return nil, err
		}
		rows, err := wb.Rows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		txs, err := parseSheet(sheet, year, rows)
		if err != nil {
			return nil, err
		}
		all = append(all, txs...)
	}
	return all, nil
}

// parseSheetYear reads a sheet name as the 4-digit year it declares.
func parseSheetYear(sheet string) (int, error) {
	name := strings.TrimSpace(sheet)
	year, err := strconv.Atoi(name)
	if err != nil || len(name) != 4 {
		return 0, &MalformedInputError{Sheet: sheet}
	}
	return year, nil
}

// parseSheet maps a sheet's header row to fields and converts every data row
// into a RawTransaction.
func parseSheet(sheet string, year int, rows [][]string) ([]RawTransaction, error) {
	if len(rows) == 0 {
		return nil, &SchemaError{Sheet: sheet, Columns: requiredColumns}
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Sheet: sheet, Columns: missing}
	}

	// Rows coming from excelize may be ragged: trailing empty cells are trimmed.
	cell := func(row []string, name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var txs []RawTransaction
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		txs = append(txs, RawTransaction{
			Date:           cell(row, colDate),
			Type:           TransactionType(cell(row, colType)),
			Holding:        cell(row, colHolding),
			Account:        cell(row, colAccount),
			Owner:          cell(row, colOwner),
			DomesticAmount: cell(row, colDomestic),
			ForeignAmount:  cell(row, colForeign),
			TaxTotal:       cell(row, colTax),
			UnitPrice:      cell(row, colUnitPrice),
			Currency:       cell(row, colCurrency),
			SheetYear:      year,
		})
	}
	return txs, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
