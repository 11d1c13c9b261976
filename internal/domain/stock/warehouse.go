package stock

// Warehouse is a warehouse record. Stock-quantity records carry no foreign
// key to a warehouse; membership is inferred from location names, so the
// interesting parts here are the names a warehouse can be recognized by.
type Warehouse struct {
	ID   RecordID `json:"id"`
	Code string   `json:"code"`
	Name string   `json:"name"`
	// StockLocationRef points at the warehouse's main storage location; its
	// label is the location's display name.
	StockLocationRef EntityRef `json:"lot_stock_id"`
	// ViewLocationRef points at the warehouse's root view location, when the
	// backend exposes one.
	ViewLocationRef EntityRef `json:"view_location_id"`
}

// CandidateNames returns the names a quant's location label is matched
// against to attribute the quant to this warehouse: the warehouse code, the
// main stock location's label, and the view location's label. Empty
// candidates are dropped so they can never match everything.
func (w *Warehouse) CandidateNames() []string {
	names := make([]string, 0, 3)
	for _, name := range []string{w.Code, w.StockLocationRef.Label, w.ViewLocationRef.Label} {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
