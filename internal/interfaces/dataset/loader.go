package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/erp/stockview/internal/domain/stock"
)

// Load fetches and decodes all five collections into a Dataset. Decoding is
// lenient at the field level (malformed foreign keys, prices and dates
// degrade to their zero forms), but a collection that is not a JSON array of
// objects is a boundary error and fails the load.
func Load(ctx context.Context, src Source) (*stock.Dataset, error) {
	ds := &stock.Dataset{}

	if err := loadCollection(ctx, src, CollectionProducts, &ds.Products); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, src, CollectionLocations, &ds.Locations); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, src, CollectionWarehouses, &ds.Warehouses); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, src, CollectionLots, &ds.Lots); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, src, CollectionQuants, &ds.Quants); err != nil {
		return nil, err
	}
	return ds, nil
}

func loadCollection[T any](ctx context.Context, src Source, collection string, out *[]T) error {
	data, err := src.Fetch(ctx, collection)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode collection %q: %w", collection, err)
	}
	return nil
}
