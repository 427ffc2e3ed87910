package utils

import (
	"strconv"
	"strings"
)

// ParseNumber parses numbers as they appear in report exports.
func ParseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	// format: 1.234,56
	if strings.Contains(raw, ".") && strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
		return strconv.ParseFloat(raw, 64)
	}

	if strings.Contains(raw, ",") {
		// format: 35,000 (thousands separator)
		parts := strings.Split(raw, ",")
		if len(parts[len(parts)-1]) == 3 {
			raw = strings.ReplaceAll(raw, ",", "")
			return strconv.ParseFloat(raw, 64)
		}

		// format: 0,01 (decimal comma)
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	return strconv.ParseFloat(raw, 64)
}
