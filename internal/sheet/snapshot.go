package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Snapshot preserves template layout across a body resize: the corner
// coordinates of every merged range on the sheet, and the row heights
// of the trailing footer region.
//
// Usage order matters: Capture before any row-count mutation, Detach
// before the resize, Restore with the resize's displacement afterward.
type Snapshot struct {
	sheet   string
	merges  []mergeSpan
	heights []rowHeight
}

type mergeSpan struct {
	startCol, startRow int
	endCol, endRow     int
}

type rowHeight struct {
	row    int
	height float64
}

// Capture records every merged range on the sheet and the heights of
// rows heightsFrom through the last populated row.
func Capture(f *excelize.File, sheet string, heightsFrom int) (*Snapshot, error) {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("merged ranges of %s: %w", sheet, err)
	}

	snap := &Snapshot{sheet: sheet}
	for _, m := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return nil, fmt.Errorf("merge corner %q: %w", m.GetStartAxis(), err)
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merge corner %q: %w", m.GetEndAxis(), err)
		}
		snap.merges = append(snap.merges, mergeSpan{startCol, startRow, endCol, endRow})
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("rows of %s: %w", sheet, err)
	}
	for row := heightsFrom; row <= len(rows); row++ {
		h, err := f.GetRowHeight(sheet, row)
		if err != nil {
			return nil, fmt.Errorf("height of row %d: %w", row, err)
		}
		snap.heights = append(snap.heights, rowHeight{row: row, height: h})
	}

	return snap, nil
}

// Detach unmerges every recorded range. Merges do not survive row
// insertion or deletion safely, so the sheet is flattened before the
// resize and re-merged by Restore afterward.
func (s *Snapshot) Detach(f *excelize.File) error {
	for _, m := range s.merges {
		start, end, err := m.refs(0)
		if err != nil {
			return err
		}
		if err := f.UnmergeCell(s.sheet, start, end); err != nil {
			return fmt.Errorf("unmerge %s:%s: %w", start, end, err)
		}
	}
	return nil
}

// Restore re-merges the recorded ranges at their corrected positions
// and reapplies the footer row heights, both offset by displacement.
//
// A range whose bottom row sits at or below footerStart moves by
// displacement as one unit, including ranges that straddle the
// boundary; splitting a straddling range would corrupt it. Ranges
// entirely above footerStart keep their original position.
func (s *Snapshot) Restore(f *excelize.File, footerStart, displacement int) error {
	for _, m := range s.merges {
		shift := 0
		if m.endRow >= footerStart {
			shift = displacement
		}
		if m.startRow+shift < 1 {
			continue
		}
		start, end, err := m.refs(shift)
		if err != nil {
			return err
		}
		if err := f.MergeCell(s.sheet, start, end); err != nil {
			return fmt.Errorf("merge %s:%s: %w", start, end, err)
		}
	}

	for _, rh := range s.heights {
		row := rh.row + displacement
		if row < 1 {
			continue
		}
		if err := f.SetRowHeight(s.sheet, row, rh.height); err != nil {
			return fmt.Errorf("set height of row %d: %w", row, err)
		}
	}

	return nil
}

func (m mergeSpan) refs(rowShift int) (start, end string, err error) {
	start, err = excelize.CoordinatesToCellName(m.startCol, m.startRow+rowShift)
	if err != nil {
		return "", "", fmt.Errorf("cell (%d,%d): %w", m.startCol, m.startRow+rowShift, err)
	}
	end, err = excelize.CoordinatesToCellName(m.endCol, m.endRow+rowShift)
	if err != nil {
		return "", "", fmt.Errorf("cell (%d,%d): %w", m.endCol, m.endRow+rowShift, err)
	}
	return start, end, nil
}
