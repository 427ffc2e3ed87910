package processor

import "go-file-processor/internal/table"

// Transformation set for files sent by Funding Corp. Add a function here
// and register it below when Funding Corp sends a new file type.
const fundingCorpClass = "fundingcorp"

func init() {
	Register(fundingCorpClass, "avg_bal_tb", avgBalTB)
	Register(fundingCorpClass, "bal_sheet_tb", balSheetTB)
}

// avgBalTB processes the Average Balances TB workbook.
// Identity until the warehouse load rules are supplied.
func avgBalTB(t table.Table) table.Table {
	return t
}

// balSheetTB processes the Balance Sheet TB workbook.
// Identity until the warehouse load rules are supplied.
func balSheetTB(t table.Table) table.Table {
	return t
}
