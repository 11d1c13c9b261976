package views

import (
	"sort"
	"strconv"
	"time"

	"github.com/erp/stockview/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// averageCostPlaces is the rounding applied to derived per-unit costs.
const averageCostPlaces = 4

// Composer derives the three dashboard view sets from the raw collections.
// It is stateless between runs: every Compose call reads the dataset, builds
// fresh views, and holds nothing back. The surrounding application decides
// when to recompute.
type Composer struct {
	logger *zap.Logger
	usages map[string]struct{}
}

// Option configures a Composer.
type Option func(*Composer)

// WithLocationUsages restricts location views to the given usage kinds.
// Locations whose usage is unknown (no matching location record) are excluded
// as well. Without this option every location that appears in a quant gets a
// view.
func WithLocationUsages(usages ...string) Option {
	return func(c *Composer) {
		c.usages = make(map[string]struct{}, len(usages))
		for _, u := range usages {
			c.usages[u] = struct{}{}
		}
	}
}

// NewComposer creates a view composer. A nil logger is replaced by a no-op
// logger so the composer stays usable as a plain library.
func NewComposer(logger *zap.Logger, opts ...Option) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Composer{logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the location, warehouse and lot views from the dataset.
// "now" anchors expiry classification and is echoed as ComposedAt, so two
// calls with identical arguments produce identical output.
//
// Compose never fails: records with missing relations degrade to empty
// labels and zero totals instead of aborting the run.
func (c *Composer) Compose(ds *stock.Dataset, now time.Time) *ViewSet {
	start := time.Now()
	runID := uuid.New()

	products := ds.ProductByID()
	locations := ds.LocationByID()

	price := func(productID stock.RecordID) decimal.Decimal {
		return products[productID].UnitPrice()
	}
	locationLabel := func(q *stock.StockQuantity) string {
		if loc, ok := locations[q.LocationRef.ID]; ok {
			return loc.DisplayLabel()
		}
		return q.LocationRef.Label
	}

	set := &ViewSet{
		Locations:  c.composeLocationViews(ds, locations, price),
		Warehouses: c.composeWarehouseViews(ds, locationLabel, price),
		Lots:       c.composeLotViews(ds, products, locationLabel, price, now),
		ComposedAt: now,
	}

	c.logger.Info("composed inventory views",
		zap.String("run_id", runID.String()),
		zap.Int("quants", len(ds.Quants)),
		zap.Int("location_views", len(set.Locations)),
		zap.Int("warehouse_views", len(set.Warehouses)),
		zap.Int("lot_views", len(set.Lots)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return set
}

// composeLocationViews groups quants by location id. Quants without a
// location id cannot be attributed anywhere and are skipped.
func (c *Composer) composeLocationViews(ds *stock.Dataset, locations map[stock.RecordID]*stock.Location, price PriceFunc) []LocationView {
	totals := AggregateQuants(ds.Quants, func(q *stock.StockQuantity) (string, bool) {
		if q.LocationRef.ID.IsZero() {
			return "", false
		}
		return q.LocationRef.ID.String(), true
	}, price)

	// Fallback labels for locations that have quants but no location record:
	// the first quant's reference label wins.
	refLabels := make(map[stock.RecordID]string)
	for i := range ds.Quants {
		ref := ds.Quants[i].LocationRef
		if ref.ID.IsZero() || ref.Label == "" {
			continue
		}
		if _, seen := refLabels[ref.ID]; !seen {
			refLabels[ref.ID] = ref.Label
		}
	}

	result := make([]LocationView, 0, len(totals))
	for key, t := range totals {
		id := stock.RecordID(key)
		view := LocationView{
			ID:             id,
			Name:           refLabels[id],
			OnHandQuantity: t.Quantity,
			TotalValue:     t.Value,
		}
		if loc, ok := locations[id]; ok {
			view.Name = loc.DisplayLabel()
			view.Usage = loc.Usage
		}
		if !c.usageAllowed(view.Usage) {
			continue
		}
		result = append(result, view)
	}
	sort.Slice(result, func(i, j int) bool { return lessRecordID(result[i].ID, result[j].ID) })
	return result
}

// composeWarehouseViews attributes quants to warehouses via name matching
// and emits one view per warehouse record, in input order. Quants no
// warehouse claims are excluded from all warehouse totals.
func (c *Composer) composeWarehouseViews(ds *stock.Dataset, locationLabel func(q *stock.StockQuantity) string, price PriceFunc) []WarehouseView {
	resolver := NewWarehouseResolver(ds.Warehouses)

	totals := AggregateQuants(ds.Quants, func(q *stock.StockQuantity) (string, bool) {
		id, ok := resolver.Resolve(locationLabel(q))
		return id.String(), ok
	}, price)

	result := make([]WarehouseView, 0, len(ds.Warehouses))
	for i := range ds.Warehouses {
		w := &ds.Warehouses[i]
		t, ok := totals[w.ID.String()]
		if !ok {
			t = zeroTotals()
		}
		result = append(result, WarehouseView{
			ID:             w.ID,
			Code:           w.Code,
			Name:           w.Name,
			OnHandQuantity: t.Quantity,
			TotalValue:     t.Value,
		})
	}
	return result
}

// composeLotViews groups quants by lot id and joins each lot record to its
// product and primary location. The primary location is taken from the
// lot's first quant in input order.
func (c *Composer) composeLotViews(ds *stock.Dataset, products map[stock.RecordID]*stock.Product, locationLabel func(q *stock.StockQuantity) string, price PriceFunc, now time.Time) []LotView {
	totals := AggregateQuants(ds.Quants, func(q *stock.StockQuantity) (string, bool) {
		if q.LotRef.ID.IsZero() {
			return "", false
		}
		return q.LotRef.ID.String(), true
	}, price)

	primaryLocation := make(map[stock.RecordID]string)
	for i := range ds.Quants {
		q := &ds.Quants[i]
		if q.LotRef.ID.IsZero() {
			continue
		}
		if _, seen := primaryLocation[q.LotRef.ID]; !seen {
			primaryLocation[q.LotRef.ID] = locationLabel(q)
		}
	}

	result := make([]LotView, 0, len(ds.Lots))
	for i := range ds.Lots {
		lot := &ds.Lots[i]

		t, ok := totals[lot.ID.String()]
		if !ok || lot.ID.IsZero() {
			t = zeroTotals()
		}

		productLabel := lot.ProductRef.Label
		if p, found := products[lot.ProductRef.ID]; found {
			productLabel = p.DisplayLabel()
		}

		expiry := lot.ExpiryDate()
		result = append(result, LotView{
			ID:              lot.ID,
			LotNumber:       lot.Name,
			ProductLabel:    productLabel,
			LocationLabel:   primaryLocation[lot.ID],
			OnHandQuantity:  t.Quantity,
			TotalValue:      t.Value,
			AverageCost:     averageCost(t),
			ExpiryDate:      expiry,
			DaysUntilExpiry: daysUntilExpiry(expiry, now),
			Status:          stock.ClassifyLotStatus(t.Quantity, t.Reserved, expiry, now),
		})
	}
	sort.Slice(result, func(i, j int) bool { return lessRecordID(result[i].ID, result[j].ID) })
	return result
}

// usageAllowed reports whether a location with the given usage should get a
// view under the configured filter.
func (c *Composer) usageAllowed(usage string) bool {
	if len(c.usages) == 0 {
		return true
	}
	_, ok := c.usages[usage]
	return ok
}

// averageCost derives the per-unit cost of aggregated stock. Zero or
// negative on-hand quantity yields zero rather than a division artifact.
func averageCost(t Totals) decimal.Decimal {
	if t.Quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return t.Value.Div(t.Quantity).Round(averageCostPlaces)
}

// daysUntilExpiry mirrors the dashboard's countdown: whole days until the
// expiry date, negative once past, -1 when the lot has no expiry at all.
func daysUntilExpiry(expiry stock.Timestamp, now time.Time) int {
	v, ok := expiry.Time()
	if !ok {
		return -1
	}
	return int(v.Sub(now).Hours() / 24)
}

// lessRecordID orders record ids numerically when both sides are numeric,
// falling back to the string form. Used only to make view order stable.
func lessRecordID(a, b stock.RecordID) bool {
	ai, aerr := strconv.ParseInt(a.String(), 10, 64)
	bi, berr := strconv.ParseInt(b.String(), 10, 64)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
