// SPDX-License-Identifier: MIT
// Package: roomcost/report
//
// xlsx.go — workbook export.
//
// Each house gets one sheet named after the house (made unique and trimmed
// to Excel's 31 character limit). Row 1 is a frozen header, one row per room
// follows in insertion order, and a final "Total" row sums the cost columns.

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/room"
)

// SheetHeader lists the exported columns in order.
var SheetHeader = []string{
	"Room",
	"Length",
	"Width",
	"Area",
	"Flooring",
	"Unit Cost",
	"Flooring Cost",
	"Charged Cost",
}

var columnWidths = []float64{
	24, // Room
	10, // Length
	10, // Width
	10, // Area
	20, // Flooring
	12, // Unit Cost
	15, // Flooring Cost
	15, // Charged Cost
}

// excelize rejects sheet names longer than this.
const maxSheetName = 31

// WriteXLSX writes a workbook with one sheet per house to w.
func WriteXLSX(w io.Writer, houses []*house.House, opts ...Option) error {
	if len(houses) == 0 {
		return ErrNoHouses
	}
	s := newSettings(opts...)

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	var (
		used  = make(map[string]bool, len(houses))
		first string
	)
	for _, h := range houses {
		if h == nil {
			return ErrNilHouse
		}
		name := sheetName(h.Name(), used)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("report: create sheet %q: %w", name, err)
		}
		if first == "" {
			first = name
		}
		if err := writeHouseSheet(f, name, h, s, styles); err != nil {
			return err
		}
	}
	if !used["sheet1"] {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("report: delete default sheet: %w", err)
		}
	}
	if idx, err := f.GetSheetIndex(first); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}

	return nil
}

// SaveXLSX writes the workbook to path, replacing any existing file.
func SaveXLSX(path string, houses []*house.House, opts ...Option) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = WriteXLSX(out, houses, opts...); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

type sheetStyles struct {
	header int
	number int
	money  int
	total  int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var (
		st  sheetStyles
		err error
	)
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("report: header style: %w", err)
	}
	// built-in formats: 2 is "0.00", 4 is "#,##0.00"
	if st.number, err = f.NewStyle(&excelize.Style{NumFmt: 2}); err != nil {
		return st, fmt.Errorf("report: number style: %w", err)
	}
	if st.money, err = f.NewStyle(&excelize.Style{NumFmt: 4}); err != nil {
		return st, fmt.Errorf("report: money style: %w", err)
	}
	st.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 2}},
		NumFmt: 4,
	})
	if err != nil {
		return st, fmt.Errorf("report: total style: %w", err)
	}

	return st, nil
}

func writeHouseSheet(f *excelize.File, sheet string, h *house.House, s settings, st sheetStyles) error {
	header := make([]any, len(SheetHeader))
	for i, v := range SheetHeader {
		header[i] = v
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("report: %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(SheetHeader), 1)
	if err := f.SetCellStyle(sheet, "A1", last, st.header); err != nil {
		return fmt.Errorf("report: %s header style: %w", sheet, err)
	}
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("report: column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("report: %s column width: %w", sheet, err)
		}
	}

	var fullTotal, chargedTotal float64
	row := 2
	for r := range h.Rooms() {
		charged := s.costFn(r)
		if err := writeRoomRow(f, sheet, row, r, charged); err != nil {
			return err
		}
		fullTotal += r.FlooringCost()
		chargedTotal += charged
		row++
	}
	if row > 2 {
		if err := f.SetCellStyle(sheet, cell(2, 2), cell(4, row-1), st.number); err != nil {
			return fmt.Errorf("report: %s number style: %w", sheet, err)
		}
		if err := f.SetCellStyle(sheet, cell(6, 2), cell(8, row-1), st.money); err != nil {
			return fmt.Errorf("report: %s money style: %w", sheet, err)
		}
	}

	total := []any{"Total", nil, nil, nil, nil, nil, fullTotal, chargedTotal}
	if err := f.SetSheetRow(sheet, cell(1, row), &total); err != nil {
		return fmt.Errorf("report: %s total row: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(len(SheetHeader), row), st.total); err != nil {
		return fmt.Errorf("report: %s total style: %w", sheet, err)
	}

	err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("report: %s freeze panes: %w", sheet, err)
	}

	return nil
}

func writeRoomRow(f *excelize.File, sheet string, row int, r room.Room, charged float64) error {
	d := r.Dimensions()
	fl := r.Flooring()
	values := []any{r.Name(), d.Length, d.Width, r.Area(), fl.TypeName, fl.UnitCost, r.FlooringCost(), charged}
	if err := f.SetSheetRow(sheet, cell(1, row), &values); err != nil {
		return fmt.Errorf("report: %s row %d: %w", sheet, row, err)
	}

	return nil
}

// cell converts 1-based coordinates; callers only pass in-range values.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// sheetName strips characters Excel forbids, truncates to maxSheetName and
// appends " (n)" until the name is unused. The result is recorded in used.
func sheetName(houseName string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(houseName))
	base = strings.Trim(base, "'")
	if base == "" {
		base = house.DefaultName
	}

	name := truncate(base, maxSheetName)
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true

	return name
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
