package loader

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"

	"go-file-processor/internal/table"
)

// Sheets named by the workbook default pattern are assumed to be blank
// scaffolding and never loaded.
var defaultSheetName = regexp.MustCompile(`^Sheet\d+$`)

// MultiSheetWarning is logged when a workbook has more than one named
// worksheet and only the first was loaded.
const MultiSheetWarning = "\n- Warning: multiple worksheets detected. \n\tOnly first worksheet was loaded."

// loadExcel loads a workbook into a Table. Of the sheets that survive the
// default-name filter, the first in workbook order is loaded; more than
// one candidate adds a warning, zero candidates yields an empty table.
func loadExcel(path string) (table.Table, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table.Table{}, nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	var sheets []string
	for _, name := range f.GetSheetList() {
		if !defaultSheetName.MatchString(name) {
			sheets = append(sheets, name)
		}
	}

	if len(sheets) == 0 {
		return table.Table{}, nil, nil
	}

	var warnings []string
	if len(sheets) > 1 {
		// TODO consolidate multi-sheet workbooks instead of loading only the first
		warnings = append(warnings, MultiSheetWarning)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.Table{}, nil, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}

	return fromStringRows(rows), warnings, nil
}
