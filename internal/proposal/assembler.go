// Package proposal assembles a proposal workbook from one estimate:
// it loads the template, resizes the line-item body to fit, repairs the
// layout displaced by that resize, and fills in every field.
package proposal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/boydsigns/proposalgen/internal/estimate"
	"github.com/boydsigns/proposalgen/internal/logging"
	"github.com/boydsigns/proposalgen/internal/sheet"
)

// Options configures an Assembler.
type Options struct {
	// TemplatePath is the workbook template to render against.
	TemplatePath string

	// LogoPath is an optional image attached at the layout's logo
	// anchor. A missing or unreadable logo is logged and skipped.
	LogoPath string

	// TotalsByLabel selects the label-lookup relocation strategy for
	// the totals block. When false, totals are written at the fixed
	// template cells shifted by the resize displacement.
	TotalsByLabel bool

	Layout Layout
}

// Assembler renders proposal workbooks. It holds no per-request state
// and is safe for concurrent use; each Render works on its own
// workbook loaded from the template.
type Assembler struct {
	opts Options
}

// New creates an Assembler.
func New(opts Options) *Assembler {
	return &Assembler{opts: opts}
}

// Render produces a filled proposal workbook for one estimate. The
// returned file is ready to serialize; the caller owns closing it.
//
// Steps run in a fixed order because later steps depend on earlier
// geometry: layout is captured before the resize, and every totals
// write applies the displacement the resize returned.
func (a *Assembler) Render(ctx context.Context, est *estimate.Estimate) (*excelize.File, error) {
	log := logging.FromContext(ctx)
	layout := a.opts.Layout

	f, err := excelize.OpenFile(a.opts.TemplatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, a.opts.TemplatePath)
		}
		return nil, fmt.Errorf("open template %s: %w", a.opts.TemplatePath, err)
	}
	ok := false
	defer func() {
		if !ok {
			f.Close()
		}
	}()

	if idx, err := f.GetSheetIndex(layout.SheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, layout.SheetName)
	}

	a.attachLogo(f, log)

	snap, err := sheet.Capture(f, layout.SheetName, layout.Body.FooterStart())
	if err != nil {
		return nil, fmt.Errorf("capture layout: %w", err)
	}

	if err := a.writeHeader(f, est); err != nil {
		return nil, err
	}

	if err := snap.Detach(f); err != nil {
		return nil, fmt.Errorf("detach merges: %w", err)
	}
	displacement, err := sheet.Resize(f, layout.SheetName, layout.Body, len(est.SignTypes))
	if err != nil {
		return nil, fmt.Errorf("resize body: %w", err)
	}
	if err := snap.Restore(f, layout.Body.FooterStart(), displacement); err != nil {
		return nil, fmt.Errorf("restore layout: %w", err)
	}

	if err := a.clearBody(f, len(est.SignTypes)); err != nil {
		return nil, err
	}
	if err := a.writeSignTypes(f, est.SignTypes); err != nil {
		return nil, err
	}
	if err := a.writeTotals(f, est, displacement, log); err != nil {
		return nil, err
	}

	log.Debug("proposal assembled",
		"sign_types", len(est.SignTypes),
		"displacement", displacement,
	)

	ok = true
	return f, nil
}

func (a *Assembler) attachLogo(f *excelize.File, log *slog.Logger) {
	if a.opts.LogoPath == "" {
		return
	}
	if err := f.AddPicture(a.opts.Layout.SheetName, a.opts.Layout.LogoCell, a.opts.LogoPath, nil); err != nil {
		log.Warn("logo not attached", "path", a.opts.LogoPath, "error", err)
	}
}

// writeHeader fills the row-position-independent fields: header
// scalars and both address blocks. Writing the top-left anchor of a
// merged range populates the whole range.
func (a *Assembler) writeHeader(f *excelize.File, est *estimate.Estimate) error {
	layout := a.opts.Layout

	fields := []struct {
		cell  string
		value string
	}{
		{layout.DateCell, est.EstimateDate},
		{layout.ProjectIDCell, estimate.Stringify(est.ProjectID)},
		{layout.SalespersonCell, est.Salesperson},
		{layout.ProjectManagerCell, est.ProjectManager},
		{layout.DescriptionCell, est.Description},

		{layout.SoldTo.Name, est.SoldTo.Name},
		{layout.SoldTo.Address, estimate.JoinAddressLines(est.SoldTo.AddressLines)},
		{layout.SoldTo.CityStateZip, estimate.CityStateZip(est.SoldTo)},
		{layout.SoldTo.Phone, est.SoldTo.Phone},

		{layout.ShipTo.Name, est.ShipTo.Name},
		{layout.ShipTo.Address, estimate.JoinAddressLines(est.ShipTo.AddressLines)},
		{layout.ShipTo.CityStateZip, estimate.CityStateZip(est.ShipTo)},
		{layout.ShipTo.Phone, est.ShipTo.Phone},
	}

	for _, fld := range fields {
		if fld.cell == "" {
			continue
		}
		if err := f.SetCellValue(layout.SheetName, fld.cell, fld.value); err != nil {
			return fmt.Errorf("write header cell %s: %w", fld.cell, err)
		}
	}
	return nil
}

// clearBody blanks the resized body region before values are written.
// The template may carry placeholder content, and shrinking leaves old
// line values in surviving rows; this also produces the fixed blank
// padding rows after the last line item.
func (a *Assembler) clearBody(f *excelize.File, count int) error {
	layout := a.opts.Layout
	last := layout.Body.Start + layout.Body.NeededRows(count) - 1
	for row := layout.Body.Start; row <= last; row++ {
		for _, col := range layout.Columns.List() {
			cell := col + strconv.Itoa(row)
			if err := f.SetCellValue(layout.SheetName, cell, nil); err != nil {
				return fmt.Errorf("clear cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// writeSignTypes writes one body row per sign type: sequence number,
// split code, composed description, quantity, unit price rounded to
// the nearest whole currency unit, and extended total.
func (a *Assembler) writeSignTypes(f *excelize.File, signs []estimate.SignType) error {
	layout := a.opts.Layout

	set := func(col string, row int, value any) error {
		cell := col + strconv.Itoa(row)
		if err := f.SetCellValue(layout.SheetName, cell, value); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
		return nil
	}

	for i, sign := range signs {
		row := layout.Body.Start + i
		code, _ := estimate.SplitTypeCode(sign.RawType)

		if err := set(layout.Columns.Item, row, i+1); err != nil {
			return err
		}
		if err := set(layout.Columns.SignType, row, code); err != nil {
			return err
		}
		if err := set(layout.Columns.Description, row, estimate.ComposeDescription(sign)); err != nil {
			return err
		}
		if v := estimate.Numify(sign.Qty); v != nil {
			if err := set(layout.Columns.Qty, row, *v); err != nil {
				return err
			}
		}
		if v := estimate.Numify(sign.UnitPrice); v != nil {
			if err := set(layout.Columns.UnitPrice, row, math.Round(*v)); err != nil {
				return err
			}
		}
		if v := estimate.Numify(sign.ExtendedTotal); v != nil {
			if err := set(layout.Columns.Total, row, *v); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTotals places the totals block values. Absent values are
// omitted, and under label lookup a label missing from the template
// skips that slot rather than failing.
func (a *Assembler) writeTotals(f *excelize.File, est *estimate.Estimate, displacement int, log *slog.Logger) error {
	layout := a.opts.Layout

	slots := []struct {
		label string
		cell  string
		value *float64
	}{
		{layout.Totals.Labels.Subtotal, layout.Totals.Cells.Subtotal, estimate.Numify(est.Totals.SubTotal)},
		{layout.Totals.Labels.Shipping, layout.Totals.Cells.Shipping, estimate.SumExtendedTotals(est.Shipping)},
		{layout.Totals.Labels.Installation, layout.Totals.Cells.Installation, estimate.SumExtendedTotals(est.Installation)},
		{layout.Totals.Labels.GrandTotal, layout.Totals.Cells.GrandTotal, estimate.Numify(est.Totals.Total)},
	}

	for _, slot := range slots {
		if slot.value == nil {
			continue
		}
		if a.opts.TotalsByLabel {
			found, err := sheet.WriteByLabel(f, layout.SheetName, slot.label, *slot.value)
			if err != nil {
				return fmt.Errorf("totals label %q: %w", slot.label, err)
			}
			if !found {
				log.Debug("totals label not in template, value skipped", "label", slot.label)
			}
			continue
		}
		if err := sheet.WriteAtOffset(f, layout.SheetName, slot.cell, displacement, *slot.value); err != nil {
			return fmt.Errorf("totals cell %s: %w", slot.cell, err)
		}
	}
	return nil
}
