package proposal

import "github.com/boydsigns/proposalgen/internal/sheet"

// Layout describes the geometry of a proposal template: which cells
// hold which fields, the bounds of the variable line-item body, and
// how the totals section is located after a resize.
type Layout struct {
	SheetName string
	LogoCell  string

	DateCell           string
	ProjectIDCell      string
	SalespersonCell    string
	ProjectManagerCell string
	DescriptionCell    string

	SoldTo PartyCells
	ShipTo PartyCells

	Body    sheet.Body
	Columns ItemColumns
	Totals  TotalsLayout
}

// PartyCells holds the anchor cells of one address block.
type PartyCells struct {
	Name         string
	Address      string
	CityStateZip string
	Phone        string
}

// ItemColumns maps line-item fields to template column letters.
type ItemColumns struct {
	Item        string
	SignType    string
	Description string
	Qty         string
	UnitPrice   string
	Total       string
}

// List returns the column letters in table order.
func (c ItemColumns) List() []string {
	return []string{c.Item, c.SignType, c.Description, c.Qty, c.UnitPrice, c.Total}
}

// TotalsLayout holds both relocation strategies for the totals block:
// label text to scan for, and fixed template cell references used as
// the offset fallback.
type TotalsLayout struct {
	Labels TotalsRefs
	Cells  TotalsRefs
}

// TotalsRefs names the four totals slots.
type TotalsRefs struct {
	Subtotal     string
	Shipping     string
	Installation string
	GrandTotal   string
}

// DefaultLayout matches the production proposal template: header block
// at the top, sold-to/ship-to at rows 11-17, line items on rows 27-47
// in columns C-H, totals directly below.
func DefaultLayout() Layout {
	return Layout{
		SheetName: "Proposal",
		LogoCell:  "B2",

		DateCell:           "E5",
		ProjectIDCell:      "E7",
		DescriptionCell:    "E8",
		SalespersonCell:    "C7",
		ProjectManagerCell: "C8",

		SoldTo: PartyCells{Name: "D11", Address: "D13", CityStateZip: "D16", Phone: "D17"},
		ShipTo: PartyCells{Name: "C11", Address: "C13", CityStateZip: "C16", Phone: "C17"},

		Body: sheet.Body{Start: 27, End: 47, ExtraBlankRows: 3},
		Columns: ItemColumns{
			Item:        "C",
			SignType:    "D",
			Description: "E",
			Qty:         "F",
			UnitPrice:   "G",
			Total:       "H",
		},
		Totals: TotalsLayout{
			Labels: TotalsRefs{
				Subtotal:     "Subtotal:",
				Shipping:     "Shipping:",
				Installation: "Installation:",
				GrandTotal:   "Total:",
			},
			Cells: TotalsRefs{
				Subtotal:     "H48",
				Shipping:     "H49",
				Installation: "H53",
				GrandTotal:   "H54",
			},
		},
	}
}
