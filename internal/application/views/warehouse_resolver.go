package views

import (
	"strings"

	"github.com/erp/stockview/internal/domain/stock"
)

// WarehouseResolver attributes a quant to a warehouse by matching the quant's
// location label against the warehouse's known names. Quant records carry no
// warehouse foreign key, so substring containment on location names is the
// only available signal; this is a heuristic, not a real join.
//
// Candidate names are indexed once at construction. Warehouses are scanned in
// input order and the first match wins, even when a later warehouse would
// match a longer, more specific name.
type WarehouseResolver struct {
	entries []resolverEntry
}

type resolverEntry struct {
	id    stock.RecordID
	names []string
}

// NewWarehouseResolver builds a resolver over the warehouse collection,
// preserving input order. Warehouses with no usable candidate names can never
// match and are skipped.
func NewWarehouseResolver(warehouses []stock.Warehouse) *WarehouseResolver {
	entries := make([]resolverEntry, 0, len(warehouses))
	for i := range warehouses {
		w := &warehouses[i]
		names := w.CandidateNames()
		if w.ID.IsZero() || len(names) == 0 {
			continue
		}
		entries = append(entries, resolverEntry{id: w.ID, names: names})
	}
	return &WarehouseResolver{entries: entries}
}

// Resolve returns the id of the first warehouse whose code or location names
// occur in the given location label. Returns false when no warehouse
// matches; such quants are excluded from warehouse totals.
func (r *WarehouseResolver) Resolve(locationLabel string) (stock.RecordID, bool) {
	if locationLabel == "" {
		return "", false
	}
	for _, entry := range r.entries {
		for _, name := range entry.names {
			if strings.Contains(locationLabel, name) {
				return entry.id, true
			}
		}
	}
	return "", false
}
