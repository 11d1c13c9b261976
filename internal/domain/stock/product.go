package stock

import "github.com/shopspring/decimal"

// Product is a catalog record as delivered by the remote backend. The three
// price fields are inconsistently populated: depending on context the backend
// fills the accounting cost (standard_price), the sales price (list_price),
// or only the pre-rename alias of the sales price (lst_price).
type Product struct {
	ID          RecordID  `json:"id"`
	Name        string    `json:"name"`
	DefaultCode string    `json:"default_code"`
	CategoryRef EntityRef `json:"categ_id"`

	StandardPrice OptionalDecimal `json:"standard_price"`
	ListPrice     OptionalDecimal `json:"list_price"`
	// LegacyListPrice is the historical alias of ListPrice; some endpoints
	// still populate only this field.
	LegacyListPrice OptionalDecimal `json:"lst_price"`
}

// UnitPrice resolves the authoritative unit price for the product. The first
// field carrying a numeric value wins: standard price, then list price, then
// the legacy list-price alias. A nil or price-less product resolves to zero,
// so downstream sums are always defined.
func (p *Product) UnitPrice() decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	if v, ok := p.StandardPrice.Decimal(); ok {
		return v
	}
	if v, ok := p.ListPrice.Decimal(); ok {
		return v
	}
	if v, ok := p.LegacyListPrice.Decimal(); ok {
		return v
	}
	return decimal.Zero
}

// DisplayLabel returns the product's presentation label, preferring the name
// and falling back to the internal reference code.
func (p *Product) DisplayLabel() string {
	if p == nil {
		return ""
	}
	if p.Name != "" {
		return p.Name
	}
	return p.DefaultCode
}
