package views

import (
	"math/rand"
	"testing"

	"github.com/erp/stockview/internal/domain/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locationKey(q *stock.StockQuantity) (string, bool) {
	if q.LocationRef.ID.IsZero() {
		return "", false
	}
	return q.LocationRef.ID.String(), true
}

func fixedPrice(v float64) PriceFunc {
	return func(stock.RecordID) decimal.Decimal { return decimal.NewFromFloat(v) }
}

func TestAggregateQuants(t *testing.T) {
	t.Run("sums quantity and value per key", func(t *testing.T) {
		quants := []stock.StockQuantity{
			{LocationRef: stock.EntityRef{ID: "A"}, ProductRef: stock.EntityRef{ID: "P"}, Quantity: decimal.NewFromInt(5)},
			{LocationRef: stock.EntityRef{ID: "A"}, ProductRef: stock.EntityRef{ID: "P"}, Quantity: decimal.NewFromInt(3)},
		}

		totals := AggregateQuants(quants, locationKey, fixedPrice(2))
		require.Len(t, totals, 1)
		assert.True(t, totals["A"].Quantity.Equal(decimal.NewFromInt(8)))
		assert.True(t, totals["A"].Value.Equal(decimal.NewFromInt(16)))
	})

	t.Run("own inventory value beats derived value", func(t *testing.T) {
		quants := []stock.StockQuantity{
			{
				LocationRef:    stock.EntityRef{ID: "A"},
				Quantity:       decimal.NewFromInt(4),
				InventoryValue: stock.OptionalFromFloat(99),
			},
		}

		totals := AggregateQuants(quants, locationKey, fixedPrice(2))
		assert.True(t, totals["A"].Value.Equal(decimal.NewFromInt(99)))
	})

	t.Run("reserved quantities accumulate", func(t *testing.T) {
		quants := []stock.StockQuantity{
			{LocationRef: stock.EntityRef{ID: "A"}, Quantity: decimal.NewFromInt(10), ReservedQuantity: stock.OptionalFromFloat(2)},
			{LocationRef: stock.EntityRef{ID: "A"}, Quantity: decimal.NewFromInt(10)},
		}

		totals := AggregateQuants(quants, locationKey, fixedPrice(0))
		assert.True(t, totals["A"].Reserved.Equal(decimal.NewFromInt(2)))
	})

	t.Run("excluded keys contribute nothing", func(t *testing.T) {
		quants := []stock.StockQuantity{
			{Quantity: decimal.NewFromInt(100)},
			{LocationRef: stock.EntityRef{ID: "B"}, Quantity: decimal.NewFromInt(1)},
		}

		totals := AggregateQuants(quants, locationKey, fixedPrice(1))
		require.Len(t, totals, 1)
		assert.True(t, totals["B"].Quantity.Equal(decimal.NewFromInt(1)))
	})

	t.Run("negative quantities sum through", func(t *testing.T) {
		quants := []stock.StockQuantity{
			{LocationRef: stock.EntityRef{ID: "A"}, Quantity: decimal.NewFromInt(5)},
			{LocationRef: stock.EntityRef{ID: "A"}, Quantity: decimal.NewFromInt(-8)},
		}

		totals := AggregateQuants(quants, locationKey, fixedPrice(1))
		assert.True(t, totals["A"].Quantity.Equal(decimal.NewFromInt(-3)))
	})
}

func TestAggregateQuantsOrderIndependence(t *testing.T) {
	quants := make([]stock.StockQuantity, 0, 40)
	for i := 0; i < 40; i++ {
		loc := "A"
		if i%3 == 0 {
			loc = "B"
		}
		quants = append(quants, stock.StockQuantity{
			LocationRef: stock.EntityRef{ID: stock.RecordID(loc)},
			ProductRef:  stock.EntityRef{ID: "P"},
			Quantity:    decimal.NewFromFloat(float64(i) * 1.25),
		})
	}

	reference := AggregateQuants(quants, locationKey, fixedPrice(3))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		shuffled := make([]stock.StockQuantity, len(quants))
		copy(shuffled, quants)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		totals := AggregateQuants(shuffled, locationKey, fixedPrice(3))
		require.Len(t, totals, len(reference))
		for key, want := range reference {
			assert.True(t, totals[key].Quantity.Equal(want.Quantity), "quantity for %s", key)
			assert.True(t, totals[key].Value.Equal(want.Value), "value for %s", key)
		}
	}
}
