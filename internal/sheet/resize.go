// Package sheet implements the geometry engine for proposal templates:
// resizing the variable-length body region, preserving merged ranges
// and row heights across that mutation, and relocating totals cells.
//
// The engine operates on one in-memory excelize workbook per request;
// nothing in this package retains state across workbooks.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Body describes the variable-length row region of a template sheet.
// Start and End are the inclusive row bounds in the original template;
// ExtraBlankRows is the fixed padding kept after the last content row.
type Body struct {
	Start          int
	End            int
	ExtraBlankRows int
}

// BaseRows returns the region's row count in the original template.
func (b Body) BaseRows() int { return b.End - b.Start + 1 }

// NeededRows returns the row count required to hold count line items
// plus the fixed blank padding.
func (b Body) NeededRows(count int) int { return count + b.ExtraBlankRows }

// Displacement returns the signed row count by which the footer moves
// when the body is resized for count line items.
func (b Body) Displacement(count int) int { return b.NeededRows(count) - b.BaseRows() }

// FooterStart returns the first row of the fixed trailing region.
func (b Body) FooterStart() int { return b.End + 1 }

// Resize grows or shrinks the body region so it holds exactly
// count+ExtraBlankRows rows, and returns the signed displacement
// applied to the footer and everything below it.
//
// Growth inserts rows at the body/footer boundary and projects the last
// body row's height and cell styles onto them, so new capacity matches
// the template and the footer is pushed down contiguously. Shrinking
// removes rows just past where the new content ends, so surviving body
// rows keep their original styling and the footer is pulled up
// contiguously.
//
// Merged ranges must be detached before calling Resize; see Snapshot.
func Resize(f *excelize.File, sheet string, body Body, count int) (int, error) {
	if body.Start < 1 || body.End < body.Start {
		return 0, fmt.Errorf("invalid body bounds %d-%d", body.Start, body.End)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative line item count %d", count)
	}

	d := body.Displacement(count)
	switch {
	case d == 0:
		return 0, nil

	case d > 0:
		if err := f.InsertRows(sheet, body.FooterStart(), d); err != nil {
			return 0, fmt.Errorf("insert %d rows at %d: %w", d, body.FooterStart(), err)
		}
		if err := projectRowStyle(f, sheet, body.End, body.FooterStart(), d); err != nil {
			return 0, err
		}

	default:
		// First row beyond the new, shorter content region. Rows shift
		// up after each removal, so the same index is removed each time.
		deleteFrom := body.Start + body.NeededRows(count)
		for i := 0; i < -d; i++ {
			if err := f.RemoveRow(sheet, deleteFrom); err != nil {
				return 0, fmt.Errorf("remove row %d: %w", deleteFrom, err)
			}
		}
	}

	return d, nil
}

// projectRowStyle copies the height and per-column cell styles of row
// src onto n rows starting at first. Style IDs name entries in the
// workbook's style table, which excelize treats as immutable once
// registered, so applying an ID elsewhere copies values rather than
// sharing mutable state between cells.
func projectRowStyle(f *excelize.File, sheet string, src, first, n int) error {
	height, err := f.GetRowHeight(sheet, src)
	if err != nil {
		return fmt.Errorf("height of row %d: %w", src, err)
	}

	cols, err := lastColumn(f, sheet)
	if err != nil {
		return err
	}

	styles := make([]int, cols+1)
	for col := 1; col <= cols; col++ {
		cell, err := excelize.CoordinatesToCellName(col, src)
		if err != nil {
			return fmt.Errorf("cell (%d,%d): %w", col, src, err)
		}
		styles[col], err = f.GetCellStyle(sheet, cell)
		if err != nil {
			return fmt.Errorf("style of %s: %w", cell, err)
		}
	}

	for row := first; row < first+n; row++ {
		if err := f.SetRowHeight(sheet, row, height); err != nil {
			return fmt.Errorf("set height of row %d: %w", row, err)
		}
		for col := 1; col <= cols; col++ {
			if styles[col] == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", col, row, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles[col]); err != nil {
				return fmt.Errorf("style %s: %w", cell, err)
			}
		}
	}

	return nil
}

// lastColumn returns the sheet's last used column, from the sheet
// dimension when present and the widest data row otherwise.
func lastColumn(f *excelize.File, sheet string) (int, error) {
	var last int

	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		ref := dim
		if i := strings.IndexByte(dim, ':'); i >= 0 {
			ref = dim[i+1:]
		}
		if col, _, err := excelize.CellNameToCoordinates(ref); err == nil {
			last = col
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("rows of %s: %w", sheet, err)
	}
	for _, row := range rows {
		if len(row) > last {
			last = len(row)
		}
	}

	if last < 1 {
		last = 1
	}
	return last, nil
}
