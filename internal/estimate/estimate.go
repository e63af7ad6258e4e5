// Package estimate defines the estimate payload shape and the pure
// formatting helpers that turn raw estimate values into proposal cell
// values. This package has no spreadsheet dependencies and can be used
// by any renderer.
package estimate

// Estimate is the input record for one proposal. It is externally owned
// and read-only to the renderer.
//
// Numeric-ish fields are declared as `any` because callers send them as
// JSON numbers or strings interchangeably; Numify resolves them.
type Estimate struct {
	EstimateDate   string `json:"estimate_date"`
	ProjectID      any    `json:"project_id"`
	Salesperson    string `json:"salesperson"`
	ProjectManager string `json:"project_manager"`
	Description    string `json:"description"`

	SoldTo Party `json:"sold_to"`
	ShipTo Party `json:"ship_to"`

	SignTypes []SignType `json:"sign_types"`

	Shipping     []AncillaryItem `json:"shipping"`
	Installation []AncillaryItem `json:"installation"`

	Totals Totals `json:"totals"`
}

// Party is one address block (sold-to or ship-to).
type Party struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Phone        string   `json:"phone"`
}

// SignType is one line item in the proposal body. RawType carries the
// combined "CODE - SUMMARY" convention text; SplitTypeCode separates it.
type SignType struct {
	RawType       string      `json:"sign_type"`
	Description   string      `json:"description"`
	Qty           any         `json:"qty"`
	UnitPrice     any         `json:"unit_price"`
	ExtendedTotal any         `json:"extended_total"`
	Components    []Component `json:"components"`
}

// Component is one sub-record of a sign type.
type Component struct {
	Description string `json:"description"`
	Dimensions  string `json:"dimensions"`
	Qty         any    `json:"qty"`
}

// AncillaryItem is one shipping or installation line; only its extended
// total is consumed, by summation.
type AncillaryItem struct {
	ExtendedTotal any `json:"extended_total"`
}

// Totals carries the caller-computed totals; they are passed through,
// never derived.
type Totals struct {
	SubTotal any `json:"sub_total"`
	Total    any `json:"total"`
}
