package loader

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates an xlsx fixture with the given sheet order and
// rows written to dataSheet.
func writeWorkbook(t *testing.T, sheets []string, dataSheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheets[0] != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheets[0]); err != nil {
			t.Fatalf("SetSheetName() err = %v", err)
		}
	}
	for _, name := range sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%s) err = %v", name, err)
		}
	}

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName() err = %v", err)
			}
			if err := f.SetCellValue(dataSheet, cell, val); err != nil {
				t.Fatalf("SetCellValue() err = %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() err = %v", err)
	}

	return path
}

func TestLoadExcel_PicksFirstNamedSheet(t *testing.T) {
	// Sheet1 is scaffolding; Data is the first candidate in workbook order
	path := writeWorkbook(t,
		[]string{"Sheet1", "Data", "Summary"},
		"Data",
		[][]any{
			{"Account", "Balance"},
			{"Cash", 100},
			{"Loans", 250},
		},
	)

	tbl, warnings, err := loadExcel(path)
	if err != nil {
		t.Fatalf("loadExcel() err = %v", err)
	}

	if tbl.Empty() {
		t.Fatal("loadExcel() returned empty table")
	}
	if got := tbl.Rows(); got != 2 {
		t.Fatalf("Rows() = %d, want 2", got)
	}
	if _, ok := tbl.Column("Account"); !ok {
		t.Fatalf("column Account missing, got %v", tbl.Names())
	}

	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one multi-worksheet warning", warnings)
	}
	if warnings[0] != MultiSheetWarning {
		t.Fatalf("warning = %q, want MultiSheetWarning", warnings[0])
	}
}

func TestLoadExcel_SingleNamedSheet_NoWarning(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Data"},
		"Data",
		[][]any{
			{"Account", "Balance"},
			{"Cash", 100},
		},
	)

	tbl, warnings, err := loadExcel(path)
	if err != nil {
		t.Fatalf("loadExcel() err = %v", err)
	}
	if tbl.Empty() {
		t.Fatal("loadExcel() returned empty table")
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
}

func TestLoadExcel_OnlyDefaultSheets_EmptyTable(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Sheet1", "Sheet12"},
		"Sheet1",
		[][]any{
			{"Account"},
			{"Cash"},
		},
	)

	tbl, warnings, err := loadExcel(path)
	if err != nil {
		t.Fatalf("loadExcel() err = %v", err)
	}
	if !tbl.Empty() {
		t.Fatal("loadExcel() table not empty, want empty for default-named sheets only")
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
}

func TestLoadExcel_NumericCellsTyped(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Data"},
		"Data",
		[][]any{
			{"Account", "Balance"},
			{"Cash", 100.5},
		},
	)

	tbl, _, err := loadExcel(path)
	if err != nil {
		t.Fatalf("loadExcel() err = %v", err)
	}

	col, ok := tbl.Column("Balance")
	if !ok {
		t.Fatal("column Balance missing")
	}
	if _, isFloat := col.Cells[0].(float64); !isFloat {
		t.Fatalf("Balance cell = %T(%v), want float64", col.Cells[0], col.Cells[0])
	}
}

func TestDefaultSheetName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Sheet1", true},
		{"Sheet12", true},
		{"Data", false},
		{"Summary", false},
		{"Sheets of Steel", false},
	}

	for _, tc := range tests {
		if got := defaultSheetName.MatchString(tc.name); got != tc.want {
			t.Fatalf("defaultSheetName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
