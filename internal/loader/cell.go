package loader

import (
	"strings"
	"time"

	"go-file-processor/internal/table"
	"go-file-processor/internal/utils"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// parseCell converts raw cell text to a typed cell value.
// Blank cells become nil.
func parseCell(raw string) table.Cell {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if n, err := utils.ParseNumber(raw); err == nil {
		return n
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d
		}
	}

	return raw
}

// fromStringRows builds a Table from raw text rows. The first row is the
// header; a header-only input yields an empty table.
func fromStringRows(rows [][]string) table.Table {
	if len(rows) == 0 {
		return table.Table{}
	}

	data := make([][]table.Cell, len(rows)-1)
	for r, row := range rows[1:] {
		cells := make([]table.Cell, len(row))
		for c, raw := range row {
			cells[c] = parseCell(raw)
		}
		data[r] = cells
	}

	return table.FromRows(rows[0], data)
}
