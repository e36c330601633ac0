package models

import "strconv"

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
)

// Cell is a single spreadsheet value. Fetchers decode whatever the sheet
// source returns into one of three variants: string, number or empty.
type Cell struct {
	kind CellKind
	str  string
	num  float64
}

func StringCell(s string) Cell {
	return Cell{kind: CellString, str: s}
}

func NumberCell(n float64) Cell {
	return Cell{kind: CellNumber, num: n}
}

func EmptyCell() Cell {
	return Cell{}
}

func (c Cell) Kind() CellKind {
	return c.kind
}

// String renders the cell the way the sheet shows an unformatted value:
// strings verbatim, numbers in their shortest decimal form, empty as "".
func (c Cell) String() string {
	switch c.kind {
	case CellString:
		return c.str
	case CellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// IsBlank reports whether the cell renders to an empty string.
func (c Cell) IsBlank() bool {
	return c.String() == ""
}

// Row is an ordered sequence of cells as returned by a sheet range read.
type Row []Cell

// At returns the cell at column index i, or an empty cell when the row is shorter.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return EmptyCell()
	}
	return r[i]
}

// StringRow builds a Row from plain strings, treating "" as a string cell.
func StringRow(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = StringCell(v)
	}
	return row
}
