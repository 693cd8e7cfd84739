// Package report renders flooring cost reports for houses.
//
// WriteText prints the console report: both houses, the equality and
// identity diagnostics between them, and the discounted cost summary of the
// upgraded house. WriteXLSX exports the same numbers as a workbook with one
// sheet per house.
//
//	up := house.UpgradeFlooring(h, house.UpgradeHouseName, house.StoneBricks())
//	if err := report.WriteText(os.Stdout, h, up); err != nil { ... }
//	if err := report.SaveXLSX("costs.xlsx", h, up); err != nil { ... }
//
// Costs are discounted with cost.Discount unless WithCostFunc says otherwise.
package report
