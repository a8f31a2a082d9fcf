package cli

import (
	"strings"
	"unicode/utf8"
)

// Table is a plain-text table with columns sized to their widest cell.
// Cells may carry ANSI colour sequences; they do not count towards width.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2,
		rightAlign: make(map[int]bool),
	}
}

// SetRightAlign right-aligns the column at colIndex.
func (t *Table) SetRightAlign(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := visibleWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if t.rightAlign[i] {
				parts[i] = padLeft(cell, colWidths[i])
			} else {
				parts[i] = padRight(cell, colWidths[i])
			}
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	sep := make([]string, len(t.headers))
	for i, w := range colWidths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(sep)

	for _, row := range t.rows {
		writeLine(row)
	}

	return result.String()
}

// visibleWidth counts the runes of s that a terminal would display,
// skipping CSI escape sequences such as colour codes.
func visibleWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		width++
	}
	return width
}

// padRight pads s with spaces on the right to reach width.
func padRight(s string, width int) string {
	if w := visibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// padLeft pads s with spaces on the left to reach width.
func padLeft(s string, width int) string {
	if w := visibleWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
