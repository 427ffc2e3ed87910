package loader

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"go-file-processor/internal/table"
)

// loadHTML loads an HTML (or mail-export) document into a Table. Such
// documents often embed small navigation or metadata tables next to the
// payload, so the table with the most cells wins; ties go to the first
// occurrence in document order.
func loadHTML(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	grids := extractGrids(doc)
	if len(grids) == 0 {
		return table.Table{}, nil
	}

	best := 0
	for i, g := range grids {
		if cellCount(g) > cellCount(grids[best]) {
			best = i
		}
	}

	return fromStringRows(grids[best]), nil
}

func cellCount(grid [][]string) int {
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return len(grid) * cols
}

// extractGrids returns the raw text grid of every <table> element in
// document order. Nested tables are collected as separate grids and their
// rows are not double-counted in the enclosing table.
func extractGrids(n *html.Node) [][][]string {
	var grids [][][]string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			grids = append(grids, tableGrid(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return grids
}

func tableGrid(tbl *html.Node) [][]string {
	var grid [][]string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "table":
				if n != tbl {
					return // nested table, collected on its own
				}
			case "tr":
				grid = append(grid, rowCells(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(tbl)

	return grid
}

func rowCells(tr *html.Node) []string {
	var cells []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			cells = append(cells, nodeText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(tr)

	return cells
}

func nodeText(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}
