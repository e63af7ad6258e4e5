package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteByLabel scans the sheet for the first cell whose trimmed text
// matches label case-insensitively and writes value into the cell
// immediately to the label's right. It reports whether the label was
// found; a missing label is not an error, the value is simply skipped.
//
// Label lookup is displacement-independent: it tolerates any structural
// change to the sheet as long as the label text survives.
func WriteByLabel(f *excelize.File, sheet, label string, value any) (bool, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return false, fmt.Errorf("rows of %s: %w", sheet, err)
	}

	want := strings.TrimSpace(label)
	for r, row := range rows {
		for c, text := range row {
			if !strings.EqualFold(strings.TrimSpace(text), want) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+2, r+1)
			if err != nil {
				return false, fmt.Errorf("cell right of %q: %w", label, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return false, fmt.Errorf("write %s: %w", cell, err)
			}
			return true, nil
		}
	}
	return false, nil
}

// WriteAtOffset writes value at cellRef shifted down by displacement
// rows. It is the fallback relocation strategy for templates without
// stable label text.
func WriteAtOffset(f *excelize.File, sheet, cellRef string, displacement int, value any) error {
	col, row, err := excelize.CellNameToCoordinates(cellRef)
	if err != nil {
		return fmt.Errorf("cell ref %q: %w", cellRef, err)
	}
	cell, err := excelize.CoordinatesToCellName(col, row+displacement)
	if err != nil {
		return fmt.Errorf("cell %s shifted %+d rows: %w", cellRef, displacement, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("write %s: %w", cell, err)
	}
	return nil
}
