package table

import (
	"reflect"
	"testing"
)

func TestFromRows(t *testing.T) {
	tbl := FromRows(
		[]string{"Account", "Balance"},
		[][]Cell{
			{"Cash", 100.0},
			{"Loans", 250.5},
		},
	)

	if got := tbl.Cols(); got != 2 {
		t.Fatalf("Cols() = %d, want 2", got)
	}
	if got := tbl.Rows(); got != 2 {
		t.Fatalf("Rows() = %d, want 2", got)
	}
	if got := tbl.CellCount(); got != 4 {
		t.Fatalf("CellCount() = %d, want 4", got)
	}

	col, ok := tbl.Column("Balance")
	if !ok {
		t.Fatal("Column(Balance) not found")
	}
	if !reflect.DeepEqual(col.Cells, []Cell{100.0, 250.5}) {
		t.Fatalf("Column(Balance) cells = %v", col.Cells)
	}

	if !reflect.DeepEqual(tbl.Row(1), []Cell{"Loans", 250.5}) {
		t.Fatalf("Row(1) = %v", tbl.Row(1))
	}
}

func TestFromRows_PadsShortRows(t *testing.T) {
	tbl := FromRows(
		[]string{"A", "B", "C"},
		[][]Cell{{"only"}},
	)

	if !reflect.DeepEqual(tbl.Row(0), []Cell{"only", nil, nil}) {
		t.Fatalf("Row(0) = %v, want short row padded with nil", tbl.Row(0))
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name string
		tbl  Table
		want bool
	}{
		{"zero value", Table{}, true},
		{"header only", FromRows([]string{"A"}, nil), true},
		{"one cell", FromRows([]string{"A"}, [][]Cell{{1.0}}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tbl.Empty(); got != tc.want {
				t.Fatalf("Empty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestColumn_NotFound(t *testing.T) {
	tbl := FromRows([]string{"A"}, [][]Cell{{1.0}})

	if _, ok := tbl.Column("Z"); ok {
		t.Fatal("Column(Z) ok = true, want false")
	}
}
