package views

import (
	"github.com/erp/stockview/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// Totals holds running per-key sums over a quant collection.
type Totals struct {
	Quantity decimal.Decimal
	Reserved decimal.Decimal
	Value    decimal.Decimal
}

// zeroTotals seeds an unseen key. Explicit zero decimals keep the fold a
// plain running sum, which makes aggregation order-independent.
func zeroTotals() Totals {
	return Totals{Quantity: decimal.Zero, Reserved: decimal.Zero, Value: decimal.Zero}
}

// KeyFunc extracts the grouping key for a quant. Returning false excludes the
// quant from the aggregation entirely (e.g. no warehouse could be resolved).
type KeyFunc func(q *stock.StockQuantity) (string, bool)

// PriceFunc resolves the unit price for a product id. Unknown products must
// resolve to zero, not fail.
type PriceFunc func(productID stock.RecordID) decimal.Decimal

// AggregateQuants folds the quant collection into per-key quantity, reserved
// and value totals. A quant's value is its own inventory valuation when the
// backend supplied one, otherwise quantity times the resolved unit price.
func AggregateQuants(quants []stock.StockQuantity, key KeyFunc, price PriceFunc) map[string]Totals {
	totals := make(map[string]Totals)
	for i := range quants {
		q := &quants[i]
		k, ok := key(q)
		if !ok {
			continue
		}

		t, seen := totals[k]
		if !seen {
			t = zeroTotals()
		}
		t.Quantity = t.Quantity.Add(q.Quantity)
		t.Reserved = t.Reserved.Add(q.ReservedQuantity.OrZero())
		t.Value = t.Value.Add(quantValue(q, price))
		totals[k] = t
	}
	return totals
}

// quantValue computes one quant's monetary value: the backend's own
// valuation when present, otherwise quantity times unit price.
func quantValue(q *stock.StockQuantity, price PriceFunc) decimal.Decimal {
	if v, ok := q.InventoryValue.Decimal(); ok {
		return v
	}
	return q.Quantity.Mul(price(q.ProductRef.ID))
}
