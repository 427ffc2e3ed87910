// Package procconfig resolves per-file processor descriptors from a YAML
// resource. Each top-level key is a bare file name:
//
//	"Average Balances TB Q1.xls":
//	  class: fundingcorp
//	  method: avg_bal_tb
package procconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Descriptor identifies the named transformation to apply to one file.
type Descriptor struct {
	Class  string
	Method string
}

// Lookup reads the YAML at pathFile and returns the descriptor registered
// under the bare file name. found is false when the file has no entry,
// which is distinct from an entry with blank fields. The resource is read
// fresh on every call so edits between files take effect.
func Lookup(pathFile, file string) (Descriptor, bool, error) {
	// file names contain dots, so the default "." delimiter would split
	// "Report.xlsx" into nested keys
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(pathFile)

	if err := v.ReadInConfig(); err != nil {
		return Descriptor{}, false, fmt.Errorf("failed to read processor config %s: %w", pathFile, err)
	}

	if !v.IsSet(file) {
		return Descriptor{}, false, nil
	}

	entry := v.GetStringMapString(file)

	return Descriptor{
		Class:  entry["class"],
		Method: entry["method"],
	}, true, nil
}
