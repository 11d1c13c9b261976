package views

import (
	"testing"

	"github.com/erp/stockview/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarehouseResolver(t *testing.T) {
	warehouses := []stock.Warehouse{
		{ID: "1", Code: "WH1", StockLocationRef: stock.EntityRef{ID: "10", Label: "WH1/Stock"}},
		{ID: "2", Code: "WH2", StockLocationRef: stock.EntityRef{ID: "20", Label: "WH2/Stock"}},
	}
	resolver := NewWarehouseResolver(warehouses)

	t.Run("matches by stock location prefix", func(t *testing.T) {
		id, ok := resolver.Resolve("WH1/Stock/Shelf A")
		require.True(t, ok)
		assert.Equal(t, stock.RecordID("1"), id)
	})

	t.Run("matches the second warehouse", func(t *testing.T) {
		id, ok := resolver.Resolve("WH2/Stock")
		require.True(t, ok)
		assert.Equal(t, stock.RecordID("2"), id)
	})

	t.Run("matches by code alone", func(t *testing.T) {
		id, ok := resolver.Resolve("Overflow WH2 Annex")
		require.True(t, ok)
		assert.Equal(t, stock.RecordID("2"), id)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := resolver.Resolve("Partners/Customers")
		assert.False(t, ok)
	})

	t.Run("empty label never matches", func(t *testing.T) {
		_, ok := resolver.Resolve("")
		assert.False(t, ok)
	})

	t.Run("matches by view location label", func(t *testing.T) {
		r := NewWarehouseResolver([]stock.Warehouse{
			{ID: "3", ViewLocationRef: stock.EntityRef{ID: "30", Label: "North Site"}},
		})
		id, ok := r.Resolve("North Site/Receiving")
		require.True(t, ok)
		assert.Equal(t, stock.RecordID("3"), id)
	})
}

// Known ambiguity of the name heuristic: warehouses are scanned in input
// order and the first substring match wins, even when a later warehouse has
// the longer, more specific name. "WH1-OVERFLOW/Stock" therefore resolves to
// the warehouse named "WH1" if that one comes first.
func TestWarehouseResolverFirstMatchAmbiguity(t *testing.T) {
	warehouses := []stock.Warehouse{
		{ID: "1", Code: "WH1"},
		{ID: "2", Code: "WH1-OVERFLOW"},
	}

	id, ok := NewWarehouseResolver(warehouses).Resolve("WH1-OVERFLOW/Stock")
	require.True(t, ok)
	assert.Equal(t, stock.RecordID("1"), id)

	// Swapping the input order flips the winner.
	id, ok = NewWarehouseResolver([]stock.Warehouse{warehouses[1], warehouses[0]}).Resolve("WH1-OVERFLOW/Stock")
	require.True(t, ok)
	assert.Equal(t, stock.RecordID("2"), id)
}

func TestWarehouseResolverSkipsUnmatchable(t *testing.T) {
	// A warehouse with no code and no location labels would otherwise match
	// via an empty substring; it must be skipped instead.
	resolver := NewWarehouseResolver([]stock.Warehouse{
		{ID: "9"},
		{ID: "1", Code: "WH1"},
	})

	id, ok := resolver.Resolve("WH1/Stock")
	require.True(t, ok)
	assert.Equal(t, stock.RecordID("1"), id)

	_, ok = resolver.Resolve("Anything else")
	assert.False(t, ok)
}
