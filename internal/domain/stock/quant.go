package stock

import "github.com/shopspring/decimal"

// StockQuantity ("quant") is the atomic fact record: how much of one product,
// in one lot, sits at one location. Reserved quantity and inventory value are
// only filled by some endpoints.
type StockQuantity struct {
	ID          RecordID  `json:"id"`
	LocationRef EntityRef `json:"location_id"`
	ProductRef  EntityRef `json:"product_id"`
	LotRef      EntityRef `json:"lot_id"`

	Quantity         decimal.Decimal `json:"quantity"`
	ReservedQuantity OptionalDecimal `json:"reserved_quantity"`
	// InventoryValue is the backend's own valuation of this quant, when it
	// provides one; otherwise value is derived from quantity and unit price.
	InventoryValue OptionalDecimal `json:"value"`
}

// Dataset is the full set of input collections the engine is composed over,
// already deserialized by the fetch layer. The engine reads it and never
// mutates it.
type Dataset struct {
	Products   []Product       `json:"products"`
	Locations  []Location      `json:"locations"`
	Warehouses []Warehouse     `json:"warehouses"`
	Lots       []Lot           `json:"lots"`
	Quants     []StockQuantity `json:"quants"`
}

// ProductByID builds an id lookup over the product collection. Records
// without an id are skipped; on duplicate ids the first record wins.
func (d *Dataset) ProductByID() map[RecordID]*Product {
	index := make(map[RecordID]*Product, len(d.Products))
	for i := range d.Products {
		p := &d.Products[i]
		if p.ID.IsZero() {
			continue
		}
		if _, exists := index[p.ID]; !exists {
			index[p.ID] = p
		}
	}
	return index
}

// LocationByID builds an id lookup over the location collection. Records
// without an id are skipped; on duplicate ids the first record wins.
func (d *Dataset) LocationByID() map[RecordID]*Location {
	index := make(map[RecordID]*Location, len(d.Locations))
	for i := range d.Locations {
		l := &d.Locations[i]
		if l.ID.IsZero() {
			continue
		}
		if _, exists := index[l.ID]; !exists {
			index[l.ID] = l
		}
	}
	return index
}
