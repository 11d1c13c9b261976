package views

import (
	"time"

	"github.com/erp/stockview/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// LocationView is the per-location stock summary rendered by the dashboard's
// locations table.
type LocationView struct {
	ID             stock.RecordID  `json:"id"`
	Name           string          `json:"name"`
	Usage          string          `json:"usage"`
	OnHandQuantity decimal.Decimal `json:"on_hand_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

// WarehouseView is the per-warehouse stock summary. Quants are attributed to
// warehouses heuristically, see WarehouseResolver.
type WarehouseView struct {
	ID             stock.RecordID  `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	OnHandQuantity decimal.Decimal `json:"on_hand_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

// LotView is the per-lot summary rendered by the lot/serial-number cards.
type LotView struct {
	ID              stock.RecordID  `json:"id"`
	LotNumber       string          `json:"lot_number"`
	ProductLabel    string          `json:"product_label"`
	LocationLabel   string          `json:"location_label"`
	OnHandQuantity  decimal.Decimal `json:"on_hand_quantity"`
	TotalValue      decimal.Decimal `json:"total_value"`
	AverageCost     decimal.Decimal `json:"average_cost"`
	ExpiryDate      stock.Timestamp `json:"expiry_date"`
	DaysUntilExpiry int             `json:"days_until_expiry"`
	Status          stock.LotStatus `json:"status"`
}

// ViewSet is the full output of one composition run. Views are fresh on
// every run, own no identity beyond it, and are never mutated afterwards.
type ViewSet struct {
	Locations  []LocationView  `json:"locations"`
	Warehouses []WarehouseView `json:"warehouses"`
	Lots       []LotView       `json:"lots"`
	ComposedAt time.Time       `json:"composed_at"`
}

// Summary is the aggregate rendered by the dashboard's summary tiles.
type Summary struct {
	LocationCount  int             `json:"location_count"`
	WarehouseCount int             `json:"warehouse_count"`
	LotCount       int             `json:"lot_count"`
	OnHandQuantity decimal.Decimal `json:"on_hand_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`

	ActiveLots   int `json:"active_lots"`
	ReservedLots int `json:"reserved_lots"`
	ExpiredLots  int `json:"expired_lots"`
	DepletedLots int `json:"depleted_lots"`
}

// Summary folds the location and lot views into the tile totals. On-hand and
// value totals are taken from the location views, which count every quant
// regardless of warehouse attribution.
func (v *ViewSet) Summary() Summary {
	s := Summary{
		LocationCount:  len(v.Locations),
		WarehouseCount: len(v.Warehouses),
		LotCount:       len(v.Lots),
		OnHandQuantity: decimal.Zero,
		TotalValue:     decimal.Zero,
	}
	for i := range v.Locations {
		s.OnHandQuantity = s.OnHandQuantity.Add(v.Locations[i].OnHandQuantity)
		s.TotalValue = s.TotalValue.Add(v.Locations[i].TotalValue)
	}
	for i := range v.Lots {
		switch v.Lots[i].Status {
		case stock.LotStatusActive:
			s.ActiveLots++
		case stock.LotStatusReserved:
			s.ReservedLots++
		case stock.LotStatusExpired:
			s.ExpiredLots++
		case stock.LotStatusDepleted:
			s.DepletedLots++
		}
	}
	return s
}
