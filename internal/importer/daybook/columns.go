package daybook

import "strings"

// The export has no schema markers: columns are found by matching header
// cell text against these canonical labels, case-insensitively and by
// substring, so reordered or decorated headers ("Vch No.", "  Date ")
// still bind.
const (
	labelType        = "vch type"
	labelNumber      = "vch no"
	labelDate        = "date"
	labelParticulars = "particulars"
	labelDebit       = "debit"
	labelCredit      = "credit"
)

// columns holds resolved column indices; -1 means absent.
type columns struct {
	Type        int
	Number      int
	Date        int
	Particulars int
	Debit       int
	Credit      int
}

func newColumns() columns {
	return columns{Type: -1, Number: -1, Date: -1, Particulars: -1, Debit: -1, Credit: -1}
}

// usable requires the two columns that define block structure. Everything
// else degrades to empty fields.
func (c columns) usable() bool {
	return c.Type >= 0 && c.Number >= 0
}

// matchHeader tries to bind a row as the header. More specific labels are
// matched first within a cell: "vch type" would otherwise never win
// against a bare "date" substring rule, and "vch no" contains no other
// label, but a cell like "Vch Date" must not bind the type column.
func matchHeader(row []string) (columns, bool) {
	cols := newColumns()
	matches := 0

	bind := func(target *int, idx int) {
		if *target == -1 {
			*target = idx
			matches++
		}
	}

	for i, cell := range row {
		text := strings.ToLower(strings.TrimSpace(cell))
		if text == "" {
			continue
		}

		switch {
		case strings.Contains(text, labelType):
			bind(&cols.Type, i)
		case strings.Contains(text, labelNumber):
			bind(&cols.Number, i)
		case strings.Contains(text, labelParticulars):
			bind(&cols.Particulars, i)
		case strings.Contains(text, labelDebit):
			bind(&cols.Debit, i)
		case strings.Contains(text, labelCredit):
			bind(&cols.Credit, i)
		case strings.Contains(text, labelDate):
			bind(&cols.Date, i)
		}
	}

	return cols, cols.usable()
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
