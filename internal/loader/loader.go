// Package loader parses flat files into tables based on file extension.
//
// To add a loadable format: add a sub-loader, dispatch to it from Load,
// and add its extension to Extensions so it shows up in the run log's
// loadable-formats listing.
package loader

import (
	"errors"
	"slices"

	"go-file-processor/internal/table"
)

// Extensions lists the loadable formats. eml and html are treated the same.
var Extensions = []string{"xls", "xlsx", "html", "eml"}

// ErrUnsupported reports an extension with no sub-loader. It is a per-file,
// recoverable condition; the caller records it and skips the file.
var ErrUnsupported = errors.New("not a loadable format")

func Supported(ext string) bool {
	return slices.Contains(Extensions, ext)
}

// Load parses the file at path into a Table using the sub-loader for ext.
// Warnings are per-file notices (currently only the multi-worksheet case)
// destined for the run log. Parse-level failures are returned as errors
// and are fatal to the run.
func Load(path, ext string) (table.Table, []string, error) {
	switch ext {
	case "xls", "xlsx":
		return loadExcel(path)
	case "html", "eml":
		t, err := loadHTML(path)
		return t, nil, err
	default:
		return table.Table{}, nil, ErrUnsupported
	}
}
